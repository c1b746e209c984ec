/*
Package regions supplies the catalog of region codes used to parameterize
resolver-directory queries. The catalog is compiled in, but can also be read
from a plain text file with one region code per non-blank line.

Random region selection takes an explicit randomness source instead of
relying on process-global random state, so that tests (and embedding
applications) can fix the selection.
*/
package regions

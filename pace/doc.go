// Package pace reads and writes the PACE challenge's treedepth text
// formats: the `.gr` graph format consumed as input, and the `.tree`
// result format produced as output (spec §6 "Surrounding collaborators").
// Neither format is part of the solver core; this package exists purely
// as the I/O boundary cmd/treedepth drives.
package pace

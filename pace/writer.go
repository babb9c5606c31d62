package pace

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTree writes the PACE `.tree` result format: td on the first line,
// then N lines of 1-based parent values (0 meaning root). parents is
// 0-based with -1 marking a root, the convention treedepth.Solve returns.
func WriteTree(w io.Writer, td int, parents []int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, td); err != nil {
		return err
	}
	for _, p := range parents {
		out := 0
		if p >= 0 {
			out = p + 1
		}
		if _, err := fmt.Fprintln(bw, out); err != nil {
			return err
		}
	}

	return bw.Flush()
}

package order

import (
	"fmt"
	"io"
)

// exportSeparator closes each order block in the export. Exactly 36 equals signs.
const exportSeparator = "===================================="

// Export writes the given orders to w in the receipt layout:
//
//	Order #<N>
//	- <item rendering>
//	...
//	Total: $<total, 2 decimals>
//	====================================
//
// One block per order, in the order given. Write failures are returned to the
// caller unchanged; this is the only I/O the domain performs.
func Export(w io.Writer, orders []*Order) error {
	for _, o := range orders {
		if _, err := fmt.Fprintf(w, "Order #%d\n", o.Number()); err != nil {
			return err
		}

		for _, item := range o.Items() {
			if _, err := fmt.Fprintf(w, "- %s\n", item.Describe()); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "Total: %s\n%s\n", o.Total(), exportSeparator); err != nil {
			return err
		}
	}

	return nil
}

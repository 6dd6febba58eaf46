package cart

import "apotek-storefront/internal/domain"

// Command is the tagged set of cart mutations. Apply is a pure function of
// (previous lines, command); the service persists whatever Apply returns.
type Command interface {
	isCommand()
}

type AddItem struct {
	Line domain.CartLine
}

type SetQuantity struct {
	ProductID string
	Quantity  int
}

type RemoveItem struct {
	ProductID string
}

type Clear struct{}

func (AddItem) isCommand()     {}
func (SetQuantity) isCommand() {}
func (RemoveItem) isCommand()  {}
func (Clear) isCommand()       {}

// Apply returns the cart lines after cmd, leaving the input slice untouched.
// Invariants: at most one line per product, no line with quantity <= 0.
func Apply(lines []domain.CartLine, cmd Command) []domain.CartLine {
	switch c := cmd.(type) {
	case AddItem:
		out := copyLines(lines)
		for i := range out {
			if out[i].ProductID == c.Line.ProductID {
				out[i].Quantity += c.Line.Quantity
				return out
			}
		}
		return append(out, c.Line)

	case SetQuantity:
		if c.Quantity <= 0 {
			return Apply(lines, RemoveItem{ProductID: c.ProductID})
		}
		out := copyLines(lines)
		for i := range out {
			if out[i].ProductID == c.ProductID {
				out[i].Quantity = c.Quantity
			}
		}
		return out

	case RemoveItem:
		out := make([]domain.CartLine, 0, len(lines))
		for _, line := range lines {
			if line.ProductID != c.ProductID {
				out = append(out, line)
			}
		}
		return out

	case Clear:
		return nil
	}
	return copyLines(lines)
}

// ItemCount sums line quantities, not the number of lines.
func ItemCount(lines []domain.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

// Subtotal sums unit price times quantity over all lines.
func Subtotal(lines []domain.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.Total()
	}
	return total
}

// Find returns the line for productID, if present.
func Find(lines []domain.CartLine, productID string) (domain.CartLine, bool) {
	for _, line := range lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return domain.CartLine{}, false
}

func copyLines(lines []domain.CartLine) []domain.CartLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}

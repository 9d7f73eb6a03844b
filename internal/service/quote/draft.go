package quote

import (
	"strings"

	"github.com/google/uuid"

	"github.com/LucasManfrin/Orcamentos/internal/money"
)

// Draft accumulates service lines while a quote is being assembled.
// Lines may be partially filled at any point; only lines with a name
// and a positive price survive Build.
type Draft struct {
	lines []ServiceLine
}

// NewDraft starts a draft with a single empty line.
func NewDraft() *Draft {
	d := &Draft{}
	d.AddLine()
	return d
}

// AddLine appends an empty service line and returns its ID.
func (d *Draft) AddLine() string {
	id := uuid.NewString()
	d.lines = append(d.lines, ServiceLine{ID: id})
	return id
}

// RemoveLine deletes the line with the given ID. The last remaining
// line is never removed.
func (d *Draft) RemoveLine(id string) {
	if len(d.lines) <= 1 {
		return
	}
	for i, line := range d.lines {
		if line.ID == id {
			d.lines = append(d.lines[:i], d.lines[i+1:]...)
			return
		}
	}
}

// SetName updates the name of the line with the given ID. Unknown IDs
// are ignored.
func (d *Draft) SetName(id, name string) {
	for i := range d.lines {
		if d.lines[i].ID == id {
			d.lines[i].Name = name
			return
		}
	}
}

// SetDescription updates the description of the line with the given ID.
func (d *Draft) SetDescription(id, description string) {
	for i := range d.lines {
		if d.lines[i].ID == id {
			d.lines[i].Description = description
			return
		}
	}
}

// SetPriceInput parses free-form price input and stores it on the line.
func (d *Draft) SetPriceInput(id, input string) {
	for i := range d.lines {
		if d.lines[i].ID == id {
			d.lines[i].Price = money.ParseInput(input)
			return
		}
	}
}

// Lines returns the current lines, filled or not.
func (d *Draft) Lines() []ServiceLine {
	out := make([]ServiceLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Total sums the prices of valid lines only.
func (d *Draft) Total() float64 {
	var total float64
	for _, line := range ValidServices(d.lines) {
		total += line.Price
	}
	return total
}

// Build returns the valid lines ready for storage. A draft with no
// valid lines cannot become a quote.
func (d *Draft) Build() ([]ServiceLine, error) {
	valid := ValidServices(d.lines)
	if len(valid) == 0 {
		return nil, ErrNoValidServices
	}
	return valid, nil
}

// ValidServices filters lines down to those with a non-blank name and a
// positive price.
func ValidServices(lines []ServiceLine) []ServiceLine {
	valid := make([]ServiceLine, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.Name) != "" && line.Price > 0 {
			line.Name = strings.TrimSpace(line.Name)
			line.Description = strings.TrimSpace(line.Description)
			valid = append(valid, line)
		}
	}
	return valid
}

// TotalOf sums the prices of the given lines.
func TotalOf(lines []ServiceLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price
	}
	return total
}

package booking

import "github.com/olegkh/airport-api/internal/domain"

// checkSeatBounds verifies that the requested position exists on the
// airplane's seat grid. The row is checked before the seat and the first
// violation wins.
func checkSeatBounds(row, seat int, airplane domain.Airplane) error {
	if row < 1 || row > airplane.Rows {
		return domain.ErrRowOutOfRange
	}
	if seat < 1 || seat > airplane.SeatsInRows {
		return domain.ErrSeatOutOfRange
	}
	return nil
}

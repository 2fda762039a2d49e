// Package forecast defines the weather capability consumed by the
// planner when adjusting outdoor tasks.
package forecast

// Condition is a coarse weather classification. Only Rain has a defined
// effect on scheduling.
type Condition string

const (
	Clear Condition = "Clear"
	Rain  Condition = "Rain"
	Windy Condition = "Windy"
)

// Provider returns the forecast condition for a calendar day. The date
// is keyed in model.DateLayout form ("2006-01-02").
type Provider interface {
	Forecast(date string) Condition
}

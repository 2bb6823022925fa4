package entity

// BulkResult is the outcome of one item of a bulk quote run. Exactly one of
// Quote, ValidationErrors or Err describes the item.
type BulkResult struct {
	Quote            *Quote
	ValidationErrors []string
	Err              error
}

func (r BulkResult) OK() bool {
	return r.Quote != nil
}

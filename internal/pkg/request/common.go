package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Validate performs custom validation for ByIDRequest.
func (r *ByIDRequest) Validate() error {
	return nil
}

// DayRangeQuery is a common struct for endpoints that take a calendar day
// range as query parameters. Both bounds are calendar days (YYYY-MM-DD);
// the range is half-open: the end day itself is excluded.
type DayRangeQuery struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

package report

// DailyReport is the read model for the reports feed: the free-text report
// from an attendance entry joined with its author's name.
type DailyReport struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Date     string `json:"date"`
	Report   string `json:"report"`
}

type DailyReportsResponse struct {
	Reports []DailyReport `json:"reports"`
}

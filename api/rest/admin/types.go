package admin

// view data for the review reply change form
type ReviewReplyPage struct {
	Tenant       string
	Token        string
	ReviewText   string
	ReviewRating int
	ReplyText    string
}

// view data for the mailing add form
type MailingPage struct {
	Tenant string
	Token  string
	Text   string
}

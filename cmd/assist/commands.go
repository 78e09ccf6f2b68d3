package main

import (
	"net/url"
	"strconv"

	"codeberg.org/branchadmin/server/internal/tui"
	"github.com/spf13/cobra"
)

const (
	defaultReplyPage   = "/admin/reviews/reply"
	defaultMailingPage = "/admin/mailings/new"
)

var (
	reviewText   string
	reviewRating int
	draftText    string
	topic        string
)

var replyCmd = &cobra.Command{
	Use:   "reply [page-path]",
	Short: "Draft a reply to a guest review",
	Long: `Opens the review reply form (default ` + defaultReplyPage + `) and lets
you generate a reply from the review and your draft.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultReplyPage
		if len(args) == 1 {
			path = args[0]
		} else {
			query := url.Values{}
			if reviewText != "" {
				query.Set("text", reviewText)
			}
			if cmd.Flags().Changed("rating") {
				query.Set("rating", strconv.Itoa(reviewRating))
			}
			if draftText != "" {
				query.Set("reply", draftText)
			}
			if len(query) > 0 {
				path += "?" + query.Encode()
			}
		}

		return run(cmd.Context(), tui.ModeReply, path)
	},
}

var mailingCmd = &cobra.Command{
	Use:   "mailing [page-path]",
	Short: "Write a mailing text from a topic",
	Long: `Opens the mailing form (default ` + defaultMailingPage + `). Type a topic
into the text field and generate the full mailing text from it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultMailingPage
		if len(args) == 1 {
			path = args[0]
		} else if topic != "" {
			path += "?" + url.Values{"topic": {topic}}.Encode()
		}

		return run(cmd.Context(), tui.ModeMailing, path)
	},
}

func init() {
	replyCmd.Flags().StringVar(&reviewText, "text", "", "review text to prefill the form with")
	replyCmd.Flags().IntVar(&reviewRating, "rating", 5, "review rating to prefill the form with")
	replyCmd.Flags().StringVar(&draftText, "draft", "", "draft reply to prefill the form with")

	mailingCmd.Flags().StringVar(&topic, "topic", "", "topic to prefill the text field with")
}

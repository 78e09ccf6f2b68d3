package writer

import (
	"fmt"
	"strings"
)

const (
	// used when a tenant has no instructions on file
	DefaultInstructions = "Be polite and professional."
	DefaultTone         = "Professional"
)

func buildReplyPrompt(instructions string) string {
	var builder strings.Builder

	builder.WriteString("You are a professional restaurant manager. Your task is to write a reply to a guest review.\n")
	builder.WriteString("TONE OF VOICE / INSTRUCTIONS:\n")
	builder.WriteString(instructions)
	builder.WriteString("\n\n")
	builder.WriteString("Analyze the review and write the ideal reply. If a draft reply is given, improve it while keeping its meaning.\n")
	builder.WriteString("The reply must be ready to send: no quotes and no lead-in such as \"Here is the reply...\".")

	return builder.String()
}

func buildReplyMessage(req ReplyRequest) string {
	return fmt.Sprintf("REVIEW:\nText: %s\nRating: %d\n\nDRAFT REPLY (may be empty): %s",
		req.ReviewText, req.ReviewRating, req.DraftText)
}

func buildMailingPrompt(instructions, tone string) string {
	var builder strings.Builder

	builder.WriteString("You are a professional SMM copywriter. Your task is to write an effective mailing text for VK.\n")
	builder.WriteString("Rules:\n")
	builder.WriteString(instructions)
	builder.WriteString("\n")
	builder.WriteString("1. The text must be engaging, short and useful.\n")
	builder.WriteString("2. Use emoji in moderation.\n")
	builder.WriteString("3. Split the text into paragraphs so it is easy to read.\n")
	builder.WriteString(fmt.Sprintf("4. Tone: %s\n", tone))
	builder.WriteString("5. No lead-in like \"Here is a version of the text:\". Only the finished text.")

	return builder.String()
}

func buildMailingMessage(topic string) string {
	return "Mailing topic: " + topic
}

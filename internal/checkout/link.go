package checkout

import (
	"net/url"
	"strings"
)

const (
	inquiryText = "Hello! I would like to inquire about your stitching services."
	bookingText = "Hello! I would like to book a stitching service."
)

// componentEscaper turns url.QueryEscape output into what browsers produce
// with encodeURIComponent, which the merchant's links have always used.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// Link returns the chat deep link that opens a conversation with number,
// prefilled with text.
func Link(number, text string) string {
	return "https://wa.me/" + number + "?text=" + escapeComponent(text)
}

// InquiryLink opens a general enquiry chat from the contact page.
func InquiryLink(number string) string {
	return Link(number, inquiryText)
}

// BookingLink opens a chat asking to book a stitching service.
func BookingLink(number string) string {
	return Link(number, bookingText)
}

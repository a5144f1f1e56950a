package services

import (
	"net/url"
	"strings"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

// enquiryLineBreak matches what mail clients expect in a mailto body.
const enquiryLineBreak = "\r\n"

// EnquiryText renders the pre-filled enquiry message for a selection.
// Unset or unknown values print as their raw value. When pricing fails the
// total prints as £0 and the error is returned alongside the text.
func EnquiryText(sel domain.QuoteSelection, table *PriceTable, cfg domain.EnquirySettings) (string, error) {
	total, err := Calculate(sel, table)

	lines := []string{
		"Hi " + cfg.ContactName + ",",
		"",
		"I have just used the quote calculator on your website and would love to discuss my project further.",
		"",
		"--- QUOTE SUMMARY ---",
		"Service: " + sel.ServiceType.Label(),
		"Property Size: " + sel.PropertySize.Label(),
		"Package: " + sel.PackageLevel.Label(),
	}
	if len(sel.Extras) > 0 {
		lines = append(lines, "Add-ons: "+strings.Join(sel.ExtraLabels(), ", "))
	}
	lines = append(lines,
		"Estimated Total: "+domain.FormatGBP(total),
		"---",
		"",
		"My Details:",
		"Name: ",
		"Phone: ",
		"Property Address: ",
		"Preferred Contact Time: ",
		"",
		"Kind regards",
	)

	return strings.Join(lines, enquiryLineBreak), err
}

// EnquirySubject returns the subject line for an enquiry with the given total.
func EnquirySubject(cfg domain.EnquirySettings, total int64) string {
	return cfg.BusinessName + " — Quote Enquiry (" + domain.FormatGBP(total) + ")"
}

// EnquiryMailto returns a mailto: URL carrying the enquiry subject and body.
func EnquiryMailto(sel domain.QuoteSelection, table *PriceTable, cfg domain.EnquirySettings) (string, error) {
	body, err := EnquiryText(sel, table, cfg)
	if err != nil {
		return "", err
	}
	total, err := Calculate(sel, table)
	if err != nil {
		return "", err
	}

	return "mailto:" + cfg.Recipient +
		"?subject=" + mailtoEscape(EnquirySubject(cfg, total)) +
		"&body=" + mailtoEscape(body), nil
}

// mailtoEscape percent-encodes a header value. RFC 6068 has no '+' for
// space, so spaces are written as %20.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Package ports declares interfaces for external collaborators the core
// depends on but does not implement: email transport and PDF rendering.
package ports

import "context"

// EmailMessage is a rendered outbound email.
type EmailMessage struct {
	From       string
	To         []string
	CC         []string
	Subject    string
	BodyHTML   string
	BodyText   string
	Attachment []byte // Optional PDF attachment, nil when absent
	AttachName string
}

// EmailSender dispatches a rendered email. Implementations must honour the
// context deadline; a timeout surfaces as an error and is converted by the
// caller into a failed send, never a batch abort.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// PDFRenderer produces the PDF for an invoice, used when a reminder template
// requests the invoice as attachment. Generation itself is an external
// concern; the core only moves the bytes.
type PDFRenderer interface {
	RenderInvoice(ctx context.Context, invoiceID string) ([]byte, error)
}

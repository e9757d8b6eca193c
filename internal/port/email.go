package port

import "context"

// EmailSender abstracts outbound email delivery.
type EmailSender interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error
}

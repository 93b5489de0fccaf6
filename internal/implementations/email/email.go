package email

import (
	"context"
	"encoding/json"
	"net/url"

	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// LogOnlySender stands in for the SES sender in test mode. Nothing is
// emailed; the issue event is only logged, and callers get the token through
// the test-mode API response instead.
type LogOnlySender struct {
	log logging.Logger
}

func NewLogOnlySender(log logging.Logger) *LogOnlySender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &LogOnlySender{log: log}
}

func (s *LogOnlySender) SendToken(
	ctx context.Context,
	u user.User,
	token user.PasswordResetToken,
) error {
	s.log.Info(
		ctx,
		"Password reset token issued, email sending is disabled.",
		logging.Entry("userID", u.ID),
	)
	return nil
}

// PasswordResetSender delivers reset tokens over Amazon SES using a
// pre-registered template.
type PasswordResetSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender               string
	template             string
	passwordResetBaseUrl url.URL
}

func NewPasswordResetSender(
	awsConfig aws.Config,
	sender string,
	template string,
	passwordResetBaseUrl url.URL,
) *PasswordResetSender {
	return &PasswordResetSender{
		ses:                  ses.NewFromConfig(awsConfig),
		sender:               sender,
		template:             template,
		passwordResetBaseUrl: passwordResetBaseUrl,
	}
}

type passwordResetTemplateParams struct {
	PasswordResetLink string `json:"PasswordResetLink"`
}

func (s *PasswordResetSender) SendToken(
	ctx context.Context,
	u user.User,
	token user.PasswordResetToken,
) error {
	resetLink := s.passwordResetBaseUrl
	query := resetLink.Query()
	query.Set("token", string(token))
	resetLink.RawQuery = query.Encode()

	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{PasswordResetLink: resetLink.String()},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				ToAddresses: []string{email},
			},
			Template:     &s.template,
			TemplateData: &templateParams,
		},
	)
	return err
}

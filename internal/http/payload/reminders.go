package payload

import (
	"errors"
	"strings"
	"unicode/utf8"

	"remindr/internal/core"

	"github.com/jellydator/validation"
)

// maxContentLength is the longest a reminder may be after trimming.
const maxContentLength = 120

type CreateReminderRequest struct {
	Content   string `json:"content"`
	Important *bool  `json:"important"`
}

func (c CreateReminderRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Content, validation.Required, validation.By(validContent)),
	)
}

func (c CreateReminderRequest) ToMessage() core.CreateReminderMessage {
	msg := core.CreateReminderMessage{
		Content: c.Content,
	}
	if c.Important != nil {
		msg.Important = *c.Important
	}
	return msg
}

// UpdateReminderRequest is a partial update. Nil means the field was absent
// from the request body, a supplied false or empty value is applied as given.
type UpdateReminderRequest struct {
	Content   *string `json:"content"`
	Important *bool   `json:"important"`
}

func (u UpdateReminderRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Content, validation.By(validContent)),
	)
}

func (u UpdateReminderRequest) ToMessage() core.UpdateReminderMessage {
	return core.UpdateReminderMessage{
		Content:   u.Content,
		Important: u.Important,
	}
}

// validContent requires content to trim to 1..120 characters. Absent
// (nil pointer) content is left to the caller's merge semantics.
func validContent(value any) error {
	content, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}

	s, ok := content.(string)
	if !ok {
		return errors.New("must be a string")
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return errors.New("cannot be blank")
	}
	if utf8.RuneCountInString(trimmed) > maxContentLength {
		return errors.New("must be at most 120 characters")
	}

	return nil
}

package acl

import (
	"github.com/jsamuelsen11/todosync/internal/domain"
)

// envelopeDTO matches the remote API's BaseResponse schema, returned by
// every write endpoint and by the session check.
type envelopeDTO[T any] struct {
	ResultCode   int             `json:"resultCode"`
	Messages     []string        `json:"messages"`
	FieldsErrors []fieldErrorDTO `json:"fieldsErrors"`
	Data         T               `json:"data"`
}

type fieldErrorDTO struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// itemDTO wraps the entity returned by create and update endpoints.
type itemDTO[T any] struct {
	Item T `json:"item"`
}

// identityDTO matches the data of GET /auth/me.
type identityDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Login string `json:"login"`
}

// toEnvelope translates a wire envelope. Data is translated only when the
// result code is success; a rejected envelope often carries an empty or
// partial data object. When the server sends field errors but no messages,
// the field errors become the messages.
func toEnvelope[In, Out any](dto envelopeDTO[In], translate func(In) Out) domain.Envelope[Out] {
	env := domain.Envelope[Out]{
		ResultCode: dto.ResultCode,
		Messages:   dto.Messages,
	}
	if len(env.Messages) == 0 && len(dto.FieldsErrors) > 0 {
		env.Messages = make([]string, 0, len(dto.FieldsErrors))
		for _, fe := range dto.FieldsErrors {
			env.Messages = append(env.Messages, fe.Error)
		}
	}
	if env.OK() {
		env.Data = translate(dto.Data)
	}
	return env
}

// empty is the translator for envelopes whose data is ignored.
func empty(struct{}) struct{} { return struct{}{} }

func toIdentity(dto identityDTO) domain.Identity {
	return domain.Identity{ID: dto.ID, Email: dto.Email, Login: dto.Login}
}

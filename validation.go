package logware

import (
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *SinkConfig) error {
	const op smerrors.Op = "logware.validateConfig"
	if cfg == nil {
		return smerrors.New(op).Msg(errMsgNilConfig)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return smerrors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return nil
}

package network

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the descriptor can be turned into a request.
func (descriptor Descriptor) Validate() error {
	if err := validate.Struct(descriptor); err != nil {
		var invalid validator.ValidationErrors

		if errors.As(err, &invalid) {
			failed := make([]string, 0, len(invalid))

			for _, field := range invalid {
				failed = append(failed, fmt.Sprintf("%s (%s)", strings.TrimPrefix(field.Namespace(), "Descriptor."), field.Tag()))
			}

			return errors.Errorf("invalid descriptor: %s", strings.Join(failed, ", "))
		}

		return errors.Wrap(err, "invalid descriptor")
	}

	for key, value := range descriptor.Headers {
		if !httpguts.ValidHeaderFieldName(key) {
			return errors.Errorf("invalid descriptor: header name %q", key)
		}

		if !httpguts.ValidHeaderFieldValue(value) {
			return errors.Errorf("invalid descriptor: header %q value", key)
		}
	}

	if descriptor.Cache != nil && descriptor.Cache.NoStore && descriptor.Cache.Revalidate > 0 {
		return errors.New("invalid descriptor: cache cannot combine noStore with revalidate")
	}

	return nil
}

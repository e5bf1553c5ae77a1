package players

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/Aidin1998/rosterhub/pkg/models"
	"github.com/go-playground/validator/v10"
)

const msgAtLeastOneField = "At least one field must be provided"

// playerInput is the decoded request body. Nil fields were not supplied.
type playerInput struct {
	Name        *string  `json:"name" validate:"omitnil,utf16min=3"`
	Age         *float64 `json:"age" validate:"omitnil,min=16"`
	MarketValue *float64 `json:"marketValue" validate:"omitnil,min=1"`
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindNumber
)

type fieldRule struct {
	key      string
	kind     fieldKind
	required string
}

// Field check order; the first failing field decides the 400 message.
var fieldRules = []fieldRule{
	{key: "name", kind: kindString, required: "Player name is required"},
	{key: "age", kind: kindNumber, required: "Player age is required"},
	{key: "marketValue", kind: kindNumber, required: "Player market value is required"},
}

// schema describes one request shape: whether fields are mandatory and the
// message for each "field.tag" constraint failure.
type schema struct {
	partial  bool
	messages map[string]string
}

var createSchema = schema{
	messages: map[string]string{
		"name.utf16min":   "Name must be 3 characters or long",
		"age.min":         "Player must be at least 16 years old",
		"marketValue.min": "Market value must be at least 1 million",
	},
}

var updateSchema = schema{
	partial: true,
	messages: map[string]string{
		"name.utf16min":   "Name must be 3 characters or long",
		"age.min":         "Player must be at least 16 years old",
		"marketValue.min": "Player market value must be at least 1 million",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("utf16min", utf16Min); err != nil {
		panic(err)
	}
	return v
}

// utf16Min checks string length in UTF-16 code units, the unit JavaScript
// clients use for String.length.
func utf16Min(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(utf16.Encode([]rune(fl.Field().String()))) >= limit
}

// ParseCreate decodes and validates a creation body. Validation failures are
// errors.KindValidation with the failing fields in check order; a body that
// is not JSON is errors.KindInternal.
func ParseCreate(body []byte) (*models.Player, error) {
	in, err := createSchema.parse(body)
	if err != nil {
		return nil, err
	}
	return &models.Player{
		Name:        *in.Name,
		Age:         *in.Age,
		MarketValue: *in.MarketValue,
	}, nil
}

// ParseUpdate decodes and validates a partial update body. At least one of
// name, age and marketValue must be present.
func ParseUpdate(body []byte) (models.PlayerPatch, error) {
	in, err := updateSchema.parse(body)
	if err != nil {
		return models.PlayerPatch{}, err
	}
	return models.PlayerPatch{
		Name:        in.Name,
		Age:         in.Age,
		MarketValue: in.MarketValue,
	}, nil
}

func (s schema) parse(body []byte) (*playerInput, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Internal.Explain("malformed request body").Wrap(err)
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.Validation.WithFields([]errors.FieldError{
			errors.NewFieldError("", expected("object", raw)),
		})
	}

	in := &playerInput{}
	failures := make(map[string]string, len(fieldRules))
	present := 0

	for _, rule := range fieldRules {
		value, found := obj[rule.key]
		if !found {
			if !s.partial {
				failures[rule.key] = rule.required
			}
			continue
		}
		present++
		if msg := in.set(rule, value); msg != "" {
			failures[rule.key] = msg
		}
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, errors.Internal.Wrap(err)
		}
		for _, fe := range verrs {
			if _, seen := failures[fe.Field()]; seen {
				continue
			}
			failures[fe.Field()] = s.message(fe)
		}
	}

	var fields []errors.FieldError
	for _, rule := range fieldRules {
		if msg, ok := failures[rule.key]; ok {
			fields = append(fields, errors.NewFieldError(rule.key, msg))
		}
	}
	if s.partial && present == 0 {
		fields = append(fields, errors.NewFieldError("", msgAtLeastOneField))
	}

	if len(fields) > 0 {
		return nil, errors.Validation.WithFields(fields)
	}
	return in, nil
}

func (s schema) message(fe validator.FieldError) string {
	if msg, ok := s.messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}

// set stores a JSON value into the matching field, returning a type error
// message when the value has the wrong JSON type.
func (in *playerInput) set(rule fieldRule, value interface{}) string {
	if rule.kind == kindString {
		str, ok := value.(string)
		if !ok {
			return expected("string", value)
		}
		in.Name = &str
		return ""
	}

	num, ok := value.(float64)
	if !ok {
		return expected("number", value)
	}
	switch rule.key {
	case "age":
		in.Age = &num
	case "marketValue":
		in.MarketValue = &num
	}
	return ""
}

func expected(want string, got interface{}) string {
	return fmt.Sprintf("Expected %s, received %s", want, jsonType(got))
}

func jsonType(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	default:
		return "object"
	}
}

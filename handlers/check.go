package handlers

import (
	"github.com/Station-Manager/errors"
)

// CheckString asserts that src is a non-empty string.
func CheckString(src any) (string, error) {
	const op errors.Op = "handlers.CheckString"
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgParamEmpty)
	}
	return srcVal, nil
}

// CheckFloat64 asserts that src is a float64. JSON numbers decode as float64.
func CheckFloat64(src any) (float64, error) {
	const op errors.Op = "handlers.CheckFloat64"
	srcVal, ok := src.(float64)
	if !ok {
		return 0, errors.New(op).Errorf("Given parameter not a float64, got %T", src)
	}
	return srcVal, nil
}

// CheckInt64 asserts that src is an integer, accepting whole float64 values.
func CheckInt64(src any) (int64, error) {
	const op errors.Op = "handlers.CheckInt64"
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
	}
	return -1, errors.New(op).Errorf("Given parameter not a int64, got %T", src)
}

package handlers

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper"
)

// Date normalizes a YYYYMMDD or YYYY-MM-DD string to YYYYMMDD. Undefined and nil
// pass through so optional dates stay optional.
func Date(values ...any) (any, error) {
	const op errors.Op = "handlers.Date"
	v := first(values)
	if v == nil || mapper.IsUndefined(v) {
		return v, nil
	}
	srcVal, err := CheckString(v)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}

	var retVal time.Time
	switch len(srcVal) {
	case 8:
		retVal, err = time.Parse("20060102", srcVal)
	case 10:
		if srcVal[4] != '-' || srcVal[7] != '-' {
			return nil, errors.New(op).Msg(ErrMsgBadDateFormat)
		}
		retVal, err = time.Parse("2006-01-02", srcVal)
	default:
		return nil, errors.New(op).Msg(ErrMsgBadDateFormat)
	}
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return retVal.Format("20060102"), nil
}

// Time normalizes an HH:MM or HHMM string to HHMM. Undefined and nil pass through.
func Time(values ...any) (any, error) {
	const op errors.Op = "handlers.Time"
	v := first(values)
	if v == nil || mapper.IsUndefined(v) {
		return v, nil
	}
	srcVal, err := CheckString(v)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}

	var retVal time.Time
	switch {
	case len(srcVal) == 5 && srcVal[2] == ':':
		retVal, err = time.Parse("15:04", srcVal)
	case len(srcVal) == 4:
		retVal, err = time.Parse("1504", srcVal)
	default:
		return nil, errors.New(op).Msg(ErrMsgBadTimeFormat)
	}
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return retVal.Format("1504"), nil
}

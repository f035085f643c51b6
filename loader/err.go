package loader

import (
	"github.com/ezrec/iridium/translate"
)

var f = translate.From

// ErrExpression is an unparsable program expression.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid program expression", string(err))
}

// ErrByteRange is a program element outside of 0 through 255.
type ErrByteRange string

func (err ErrByteRange) Error() string {
	return f("%v is not a byte", string(err))
}

// ErrNotList is a program expression value that is not a list of bytes.
type ErrNotList string

func (err ErrNotList) Error() string {
	return f("%v is not a byte list", string(err))
}

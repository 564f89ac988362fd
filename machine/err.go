package machine

import (
	"github.com/ezrec/regmach/translate"
)

var f = translate.From

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

package catalog

import "errors"

var ErrBlankCode = errors.New("blank product code")

// MsgNotRegistered is the fixed operator-facing message for a code
// that has no entry in the product master.
const MsgNotRegistered = "item not registered in master data"

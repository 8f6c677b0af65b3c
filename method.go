package sipline

import (
	"github.com/ghettovoice/sipline/internal/grammar"
)

// Method is a SIP request method in its canonical folded spelling.
//
// The known set is deliberately small and closed; any other spelling is
// carried through as an opaque extension method. Identity is by spelling,
// so two extension methods with the same folded spelling compare equal.
type Method string

// Known request methods.
const (
	MethodInvite   Method = "invite"
	MethodAck      Method = "ack"
	MethodBye      Method = "bye"
	MethodCancel   Method = "cancel"
	MethodOption   Method = "option"
	MethodRegister Method = "register"
)

// methods is the closed canonical method table. Lookup order is
// irrelevant: the mapping is a pure function of the spelling.
var methods = map[string]Method{
	string(MethodInvite):   MethodInvite,
	string(MethodAck):      MethodAck,
	string(MethodBye):      MethodBye,
	string(MethodCancel):   MethodCancel,
	string(MethodOption):   MethodOption,
	string(MethodRegister): MethodRegister,
}

// CanonicMethod maps an already folded spelling to its canonical method.
// Unknown spellings are returned unchanged as extension methods.
func CanonicMethod[T ~string | ~[]byte](s T) Method {
	if m, ok := methods[string(s)]; ok {
		return m
	}
	return Method(s)
}

// IsKnown reports whether the method belongs to the fixed canonical set.
func (m Method) IsKnown() bool {
	_, ok := methods[string(m)]
	return ok
}

// IsValid reports whether the method spelling is a valid grammar token.
func (m Method) IsValid() bool { return grammar.IsToken(m) }

func (m Method) String() string { return string(m) }

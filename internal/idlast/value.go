package idlast

// Value is a closed sum over the constant value kinds IDL supports: signed
// integers, unsigned integers, floats, strings (also used for chars), and
// booleans. It mirrors the reference implementation's std::variant<int64_t,
// uint64_t, double, std::string, bool> exactly. The parser's constant
// evaluator produces every kind except VUint.
type Value struct {
	kind ValueKind
	i    int64
	u    uint64
	f    float64
	s    string
	b    bool
}

// ValueKind identifies which field of a Value is populated.
type ValueKind uint8

const (
	VInt ValueKind = iota
	VUint
	VFloat
	VString
	VBool
)

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) Int() int64      { return v.i }
func (v Value) Uint() uint64    { return v.u }
func (v Value) Float() float64  { return v.f }
func (v Value) String() string  { return v.s }
func (v Value) Bool() bool      { return v.b }

func IntValue(i int64) Value       { return Value{kind: VInt, i: i} }
func UintValue(u uint64) Value     { return Value{kind: VUint, u: u} }
func FloatValue(f float64) Value   { return Value{kind: VFloat, f: f} }
func StringValue(s string) Value   { return Value{kind: VString, s: s} }
func BoolValue(b bool) Value       { return Value{kind: VBool, b: b} }

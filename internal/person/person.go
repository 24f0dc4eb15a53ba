package person

import "fmt"

// Person is one of the two fixed parties in the shared ledger.
// The set is closed: there is no participant registration.
type Person string

const (
	Kiruthika Person = "Kiruthika"
	Neha      Person = "Neha"
)

// All lists both participants.
var All = []Person{Kiruthika, Neha}

// Parse converts a raw string into a Person, rejecting anyone
// who is not one of the two parties.
func Parse(s string) (Person, error) {
	switch Person(s) {
	case Kiruthika:
		return Kiruthika, nil
	case Neha:
		return Neha, nil
	default:
		return "", fmt.Errorf("invalid person %q", s)
	}
}

// Valid reports whether p is one of the two parties.
func (p Person) Valid() bool {
	return p == Kiruthika || p == Neha
}

// Other returns the counterpart of p.
func (p Person) Other() Person {
	if p == Kiruthika {
		return Neha
	}
	return Kiruthika
}

func (p Person) String() string {
	return string(p)
}

// PaidFor says who benefited from an expense.
type PaidFor string

const (
	PaidForBoth      PaidFor = "Both"
	PaidForKiruthika PaidFor = PaidFor(Kiruthika)
	PaidForNeha      PaidFor = PaidFor(Neha)
)

// ParsePaidFor converts a raw string into a PaidFor value. The empty
// string normalizes to Both for records created before the field existed.
func ParsePaidFor(s string) (PaidFor, error) {
	switch PaidFor(s) {
	case "", PaidForBoth:
		return PaidForBoth, nil
	case PaidForKiruthika:
		return PaidForKiruthika, nil
	case PaidForNeha:
		return PaidForNeha, nil
	default:
		return "", fmt.Errorf("invalid paid for option %q", s)
	}
}

// Valid reports whether f is one of the three allowed options.
func (f PaidFor) Valid() bool {
	return f == PaidForBoth || f == PaidForKiruthika || f == PaidForNeha
}

// Person returns the single beneficiary and true, or false for Both.
func (f PaidFor) Person() (Person, bool) {
	if f == PaidForBoth {
		return "", false
	}
	return Person(f), true
}

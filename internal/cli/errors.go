package cli

import "fmt"

type invalidDateError struct {
	flag  string
	value string
}

func (e invalidDateError) Error() string {
	return fmt.Sprintf("--%s: invalid date %q (want YYYY-MM-DD)", e.flag, e.value)
}

func errInvalidDate(flag, value string) error {
	return invalidDateError{flag: flag, value: value}
}

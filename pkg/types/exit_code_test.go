// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    ExitCode
		wantErr bool
	}{
		{"zero is valid", ExitCode(0), false},
		{"one is valid", ExitCode(1), false},
		{"255 is valid", ExitCode(255), false},
		{"256 is invalid", ExitCode(256), true},
		{"negative is invalid", ExitCode(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.code.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("Validate() error does not wrap ErrInvalidExitCode: %v", err)
			}
		})
	}
}

func TestExitCode_IsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() {
		t.Error("ExitSuccess.IsSuccess() = false, want true")
	}
	if ExitFailure.IsSuccess() {
		t.Error("ExitFailure.IsSuccess() = true, want false")
	}
}

func TestFromSignal(t *testing.T) {
	t.Parallel()

	if got := FromSignal(2); got != 130 {
		t.Errorf("FromSignal(2) = %d, want 130", got)
	}
	if got := FromSignal(15); got != 143 {
		t.Errorf("FromSignal(15) = %d, want 143", got)
	}
}

func TestExitCode_String(t *testing.T) {
	t.Parallel()

	if got := ExitParseError.String(); got != "102" {
		t.Errorf("ExitParseError.String() = %q, want %q", got, "102")
	}
}

func TestReservedCodes_AreDistinct(t *testing.T) {
	t.Parallel()

	codes := []ExitCode{
		ExitSuccess, ExitFailure, ExitInternal, ExitParseError,
		ExitDuplicateRecipe, ExitUnknownRecipe, ExitMissingArgument, ExitExtraArgument,
	}
	seen := make(map[ExitCode]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("exit code %d reserved twice", c)
		}
		seen[c] = true
		if err := c.Validate(); err != nil {
			t.Errorf("reserved code %d does not validate: %v", c, err)
		}
	}
}

package cargo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjdumpArgs(t *testing.T) {
	o := Objdump{
		Binary:    "usbc-fursuit-fan",
		Target:    "thumbv7m-none-eabihf",
		BuildType: "release",
		Flags:     []string{"-h"},
	}

	assert.Equal(t, []string{
		"objdump",
		"--bin", "usbc-fursuit-fan",
		"--target", "thumbv7m-none-eabihf",
		"--release",
		"--", "-h",
	}, o.args())
}

func TestObjdumpArgsNoTriple(t *testing.T) {
	o := Objdump{Binary: "fw", BuildType: "debug", Flags: []string{"-t"}}

	assert.Equal(t, []string{"objdump", "--bin", "fw", "--debug", "--", "-t"}, o.args())
}

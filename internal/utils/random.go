package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var randomAdjectives = []string{
	"brave",
	"bright",
	"calm",
	"clever",
	"dapper",
	"eager",
	"gentle",
	"keen",
	"lively",
	"merry",
	"nimble",
	"proud",
	"steady",
	"swift",
	"vibrant",
	"witty",
}

var randomNouns = []string{
	"otter",
	"panda",
	"quill",
	"raven",
	"falcon",
	"harbor",
	"ivy",
	"kestrel",
	"lantern",
	"meadow",
	"ocean",
	"quartz",
	"spruce",
	"tide",
	"willow",
	"wren",
}

// RandomBranchName returns a Docker-style adjective-noun name, offered as
// the placeholder suggestion when creating a branch.
func RandomBranchName() string {
	return fmt.Sprintf("%s-%s", randomWord(randomAdjectives), randomWord(randomNouns))
}

func randomWord(list []string) string {
	if len(list) == 0 {
		return ""
	}
	limit := big.NewInt(int64(len(list)))
	idx, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return list[0]
	}
	return list[int(idx.Int64())]
}

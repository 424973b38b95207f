package xibo

import (
	"net/url"
	"strconv"
)

// Form/query helpers. Zero values are treated as unset and omitted, so
// optional fields never reach the wire.

func setStr(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value != 0 {
		v.Set(key, strconv.Itoa(value))
	}
}

// setFlag always writes the value; used for booleans where 0 is meaningful.
func setFlag(v url.Values, key string, value int) {
	v.Set(key, strconv.Itoa(value))
}

func setInts(v url.Values, key string, values []int) {
	for _, value := range values {
		v.Add(key, strconv.Itoa(value))
	}
}

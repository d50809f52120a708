package common

import (
	"fmt"
)

//EncodeToString returns the lowercase string representation of hexBytes with
//the 0x prefix
func EncodeToString(hexBytes []byte) string {
	return fmt.Sprintf("0x%x", hexBytes)
}

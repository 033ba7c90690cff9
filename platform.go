package rapidbase

import "fmt"

var version = 0x000100

// Version returns the version of the rapidbase module.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version>>16&0xff, version>>8&0xff, version&0xff)
}

// DecodeKernel returns the name of the implementation being used for decode operations.
func DecodeKernel() string {
	return ActiveBackend().String()
}

// EncodeKernel returns the name of the implementation being used for encode operations.
func EncodeKernel() string {
	return ActiveBackend().String()
}

// CheckKernel returns the name of the implementation being used for check operations.
func CheckKernel() string {
	return ActiveBackend().String()
}

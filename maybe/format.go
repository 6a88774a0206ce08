package maybe

import "fmt"

func stringify(x interface{}) string {
	return fmt.Sprintf("%v", x)
}

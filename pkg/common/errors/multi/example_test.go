/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package multi

import (
	"errors"
	"fmt"
)

func Example() {
	var err error
	for _, node := range []string{"0.0.3", "0.0.4", "0.0.5"} {
		if node != "0.0.4" {
			err = Append(err, fmt.Errorf("closing node %s failed", node))
		}
	}
	fmt.Println(err)

	// each failure can be inspected on its own
	var errs Errors
	if errors.As(err, &errs) {
		fmt.Println(errs[1])
	}

	// Output:
	// 2 errors occurred: [1] closing node 0.0.3 failed [2] closing node 0.0.5 failed
	// closing node 0.0.5 failed
}

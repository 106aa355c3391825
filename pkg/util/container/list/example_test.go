// Copyright 2023 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package list_test

import (
	"fmt"

	"github.com/cockroachdb/stl/pkg/util/container/list"
)

func Example() {
	// Create a new list and put some numbers in it.
	l := list.New[int]()
	e4 := l.PushBack(4)
	e1 := l.PushFront(1)
	if _, err := l.InsertBefore(e4, 3); err != nil {
		panic(err)
	}
	if _, err := l.InsertAfter(e1, 2); err != nil {
		panic(err)
	}

	// Iterate through list and print its contents.
	for e := l.Front(); e != l.End(); e = l.Next(e) {
		fmt.Println(l.Value(e))
	}

	// Positions survive the removal of other elements.
	if err := l.Erase(e1); err != nil {
		panic(err)
	}
	fmt.Println(l.Value(e4), l)

	// Output:
	// 1
	// 2
	// 3
	// 4
	// 4 sz(3) [2 3 4]
}

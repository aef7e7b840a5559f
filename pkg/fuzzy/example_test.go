package fuzzy_test

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/trifuzzy/pkg/fuzzy"
)

func ExampleNew() {
	fmt.Println(fuzzy.New(2.5, 1.5, 2))
	// Output: (1.5, 2, 2.5)
}

func ExampleParse() {
	n, err := fuzzy.Parse("3, 1, 2")
	fmt.Println(n, err)
	// Output: (1, 2, 3) <nil>
}

func ExampleTriFuzzyNum_Sub() {
	a := fuzzy.MustParse("(1, 2, 3)")
	b := fuzzy.Crisp(1)
	fmt.Println(a.Sub(b))
	fmt.Println(a.Sub(a))
	// Output:
	// (0, 1, 2)
	// (-2, 0, 2)
}

func ExampleTriFuzzyNum_Compare() {
	fmt.Println(fuzzy.Crisp(1).Compare(fuzzy.Crisp(2)))
	fmt.Println(fuzzy.New(-2, 0, 2).Compare(fuzzy.New(-1, 0, 1)))
	// Output:
	// <
	// <
}

func ExampleTriFuzzyNumSet_ArithmeticMean() {
	s := fuzzy.NewSet(fuzzy.MustParse("(1, 2, 3)"), fuzzy.MustParse("(3, 4, 5)"))
	mean, _ := s.ArithmeticMean()
	fmt.Println(mean)

	_, err := fuzzy.NewSet().ArithmeticMean()
	fmt.Println(errors.Is(err, fuzzy.ErrEmptySet))
	// Output:
	// (2, 3, 4)
	// true
}

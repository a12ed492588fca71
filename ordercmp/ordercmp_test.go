package ordercmp

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type person struct {
	name string
	age  int
}

func TestFuse(t *testing.T) {
	Convey("Given a comparator over ages and a projection from person to age", t, func() {
		byAge := func(a, b int) bool { return a < b }
		age := func(p person) int { return p.age }
		pred := Fuse[person](byAge, age)

		Convey("When two people of different ages are compared", func() {
			younger := person{"alice", 20}
			older := person{"bob", 40}

			So(pred(younger, older), ShouldBeTrue)
			So(pred(older, younger), ShouldBeFalse)
		})

		Convey("When two people of the same age are compared", func() {
			a := person{"alice", 20}
			b := person{"alex", 20}

			So(pred(a, b), ShouldBeFalse)
			So(pred(b, a), ShouldBeFalse)
			So(Equivalent(pred, a, b), ShouldBeTrue)
		})
	})

	Convey("Given Identity as the projection", t, func() {
		pred := Fuse[int](Less[int], Identity[int])

		Convey("It behaves exactly like the raw comparator", func() {
			So(pred(1, 2), ShouldBeTrue)
			So(pred(2, 1), ShouldBeFalse)
			So(pred(2, 2), ShouldBeFalse)
		})
	})

	Convey("Given FuseIdentity", t, func() {
		pred := FuseIdentity[int](Less[int])

		Convey("It matches Fuse(cmp, Identity) for every pair", func() {
			viaFuse := Fuse[int](Less[int], Identity[int])
			for a := -2; a <= 2; a++ {
				for b := -2; b <= 2; b++ {
					So(pred(a, b), ShouldEqual, viaFuse(a, b))
				}
			}
		})
	})
}

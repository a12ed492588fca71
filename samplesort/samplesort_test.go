package samplesort

import (
	"testing"

	"sortkata/ordercmp"

	. "github.com/smartystreets/goconvey/convey"
)

func isSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

func withDeterministicRand(seq []int, fn func()) {
	old := randIntN
	i := 0
	randIntN = func(n int) int {
		if i >= len(seq) {
			return 0
		}
		v := seq[i] % n
		i++
		return v
	}
	defer func() { randIntN = old }()
	fn()
}

func TestSortScenarios(t *testing.T) {
	Convey("Given the reverse-sorted fixture [5,4,3,2,1]", t, func() {
		data := []int{5, 4, 3, 2, 1}
		Sort(data, ordercmp.Less[int], ordercmp.Identity[int])
		So(data, ShouldResemble, []int{1, 2, 3, 4, 5})
	})

	Convey("Given an empty range", t, func() {
		var data []int
		Sort(data, ordercmp.Less[int], ordercmp.Identity[int])
		So(data, ShouldResemble, []int{})
	})

	Convey("Given a single element", t, func() {
		data := []int{42}
		Sort(data, ordercmp.Less[int], ordercmp.Identity[int])
		So(data, ShouldResemble, []int{42})
	})

	Convey("Given the all-equal fixture", t, func() {
		data := []int{7, 7, 7, 7, 7, 7, 7, 7}
		Sort(data, ordercmp.Less[int], ordercmp.Identity[int])
		So(data, ShouldResemble, []int{7, 7, 7, 7, 7, 7, 7, 7})
	})

	Convey("Given [3,1,4,1,5,9,2,6,5,3]", t, func() {
		data := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
		Sort(data, ordercmp.Less[int], ordercmp.Identity[int])
		So(data, ShouldResemble, []int{1, 1, 2, 3, 3, 4, 5, 5, 6, 9})
	})

	Convey("Given a projection over a struct field", t, func() {
		type item struct {
			key   int
			label string
		}
		data := []item{{3, "c"}, {1, "a"}, {2, "b"}}
		Sort(data, ordercmp.Less[int], func(it item) int { return it.key })
		keys := make([]int, len(data))
		for i, it := range data {
			keys[i] = it.key
		}
		So(keys, ShouldResemble, []int{1, 2, 3})
	})
}

func TestInsertionSort(t *testing.T) {
	Convey("Given a slice needing the binary-probe prefix rotation", t, func() {
		data := []int{5, 4, 3, 2, 1}
		insertionSort(data, ordercmp.FuseIdentity(ordercmp.Less[int]))
		So(data, ShouldResemble, []int{1, 2, 3, 4, 5})
	})
}

func TestClassifierSplitterInvariant(t *testing.T) {
	Convey("Given a distinct, sorted splitter set", t, func() {
		splitters := []int{10, 20, 30, 40, 50, 60, 70}
		tree := buildClassifierTree(splitters)
		pred := ordercmp.FuseIdentity(ordercmp.Less[int])

		Convey("storage[i] <= storage[2i] and storage[i] <= storage[2i+1] under the order", func() {
			for i := 1; i < len(tree); i++ {
				if 2*i < len(tree) && tree[2*i] != 0 {
					So(pred(tree[2*i], tree[i]), ShouldBeFalse)
				}
				if 2*i+1 < len(tree) && tree[2*i+1] != 0 {
					So(pred(tree[2*i+1], tree[i]), ShouldBeFalse)
				}
			}
		})

		Convey("Every value classifies into a bucket matching its rank among splitters", func() {
			for _, v := range []int{5, 10, 15, 25, 65, 100} {
				id := classifyOne(pred, tree, v)
				lowerOK := id == 0 || !pred(v, splitters[id-1])
				upperOK := id == len(splitters) || pred(v, splitters[id])
				So(lowerOK, ShouldBeTrue)
				So(upperOK, ShouldBeTrue)
			}
		})
	})
}

func FuzzSortIsPermutationAndSorted(f *testing.F) {
	f.Add([]byte{5, 4, 3, 2, 1})
	f.Add([]byte{})
	f.Add([]byte{9, 9, 9, 9})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})

	f.Fuzz(func(t *testing.T, seed []byte) {
		data := make([]int, len(seed))
		for i, b := range seed {
			data[i] = int(b)
		}
		original := append([]int(nil), data...)

		Sort(data, ordercmp.Less[int], ordercmp.Identity[int])

		if !isSorted(data) {
			t.Fatalf("not sorted: %v (from %v)", data, original)
		}

		count := make(map[int]int)
		for _, v := range original {
			count[v]++
		}
		for _, v := range data {
			count[v]--
		}
		for v, c := range count {
			if c != 0 {
				t.Fatalf("not a permutation: value %d off by %d", v, c)
			}
		}
	})
}

func TestSortIdempotentOnSortedInput(t *testing.T) {
	Convey("Given an already-sorted range", t, func() {
		data := make([]int, 500)
		for i := range data {
			data[i] = i
		}
		before := append([]int(nil), data...)

		Sort(data, ordercmp.Less[int], ordercmp.Identity[int])

		So(data, ShouldResemble, before)
	})
}

func TestDeterministicSamplingHook(t *testing.T) {
	Convey("Given a pinned sampling sequence", t, func() {
		data := make([]int, 100)
		for i := range data {
			data[i] = 100 - i
		}
		withDeterministicRand([]int{3, 1, 4, 1, 5, 9, 2, 6}, func() {
			Sort(data, ordercmp.Less[int], ordercmp.Identity[int])
		})
		So(isSorted(data), ShouldBeTrue)
	})
}

package grid

import "testing"

func TestMap(t *testing.T) {
	g := MustParse([]byte(smileyGrid))

	named := Map(g, func(c byte) string {
		switch c {
		case '.':
			return "skin"
		case 'o':
			return "mouth"
		case 'X':
			return "eye"
		default:
			return "other"
		}
	})

	if named.Width() != g.Width() || named.Height() != g.Height() {
		t.Fatalf("mapped grid is %dx%d, want %dx%d", named.Width(), named.Height(), g.Width(), g.Height())
	}

	cases := []struct {
		x, y int
		want string
	}{
		{x: 0, y: 0, want: "other"},
		{x: 8, y: 1, want: "eye"},
		{x: 8, y: 3, want: "mouth"},
		{x: 5, y: 2, want: "skin"},
	}
	for _, tc := range cases {
		if got := named.At(tc.x, tc.y); got != tc.want {
			t.Fatalf("At(%d, %d)=%q, want %q", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMap_DoesNotMutateSource(t *testing.T) {
	g := MustParse([]byte("ab\ncd"))

	Map(g, func(c byte) byte { return 'z' })

	if got := MustFormatASCII(g); got != "ab\ncd\n" {
		t.Fatalf("source grid changed: %q", got)
	}
}

func TestMapIndexed(t *testing.T) {
	g := MustParse([]byte(smileyGrid))

	type cell struct {
		sum  int
		name string
	}
	mapped := MapIndexed(g, func(c byte, x, y int) cell {
		name := "skin"
		switch c {
		case 'o':
			name = "mouth"
		case 'X':
			name = "eye"
		case 's', 'e':
			name = "other"
		}
		return cell{sum: x + y, name: name}
	})

	cases := []struct {
		x, y int
		want cell
	}{
		{x: 0, y: 0, want: cell{sum: 0, name: "other"}},
		{x: 8, y: 1, want: cell{sum: 9, name: "eye"}},
		{x: 8, y: 3, want: cell{sum: 11, name: "mouth"}},
		{x: 5, y: 2, want: cell{sum: 7, name: "skin"}},
	}
	for _, tc := range cases {
		if got := mapped.At(tc.x, tc.y); got != tc.want {
			t.Fatalf("At(%d, %d)=%+v, want %+v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMapIndexed_CoordinatesCoverEveryCell(t *testing.T) {
	g := MustNew[byte](4, 3)

	coords := MapIndexed(g, func(_ byte, x, y int) [2]int {
		return [2]int{x, y}
	})

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if got := coords.At(x, y); got != [2]int{x, y} {
				t.Fatalf("cell (%d, %d) saw coordinates %v", x, y, got)
			}
		}
	}
}

func TestMap_EmptyGrid(t *testing.T) {
	g := Map(&Grid[byte]{}, func(c byte) int { return int(c) })
	if g.Width() != 0 || g.Height() != 0 || g.Len() != 0 {
		t.Fatalf("mapped empty grid is %dx%d len %d", g.Width(), g.Height(), g.Len())
	}
}

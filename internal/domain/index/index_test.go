package index

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tunelab/songbook/internal/domain/model"
)

func TestKey(t *testing.T) {
	Convey("Given the case-folding key function", t, func() {
		Convey("When folding ASCII titles", func() {
			Convey("Then case variants meet on one key", func() {
				So(Key("3AM"), ShouldEqual, Key("3am"))
				So(Key("Creep"), ShouldEqual, Key("CREEP"))
				So(Key("Creep"), ShouldEqual, "creep")
			})
		})

		Convey("When folding beyond ASCII", func() {
			Convey("Then full case folding applies, not just lowercasing", func() {
				So(Key("Straße"), ShouldEqual, Key("STRASSE"))
				So(Key("ΟΔΟΣ"), ShouldEqual, Key("οδος"))
			})
		})

		Convey("When folding distinct titles", func() {
			Convey("Then keys stay distinct", func() {
				So(Key("Yellow"), ShouldNotEqual, Key("Mellow"))
			})
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given normalized rows", t, func() {
		rows := []model.Song{
			{"title": "3AM", "artist": "Matchbox Twenty"},
			{"title": "Creep", "artist": "Radiohead"},
			{"title": "Yellow", "artist": "Coldplay"},
		}

		Convey("When building the index", func() {
			ix := Build(rows)

			Convey("Then every title is reachable case-insensitively", func() {
				So(ix.Len(), ShouldEqual, 3)

				song, found := ix.Lookup(Key("3am"))
				So(found, ShouldBeTrue)
				So(song["artist"], ShouldEqual, "Matchbox Twenty")

				song, found = ix.Lookup(Key("CREEP"))
				So(found, ShouldBeTrue)
				So(song["artist"], ShouldEqual, "Radiohead")
			})

			Convey("And unknown titles miss", func() {
				_, found := ix.Lookup(Key("Karma Police"))
				So(found, ShouldBeFalse)
			})

			Convey("And there is nothing to report", func() {
				So(ix.Duplicates(), ShouldBeEmpty)
				So(ix.Untitled(), ShouldEqual, 0)
			})
		})
	})
}

func TestBuildDuplicates(t *testing.T) {
	Convey("Given rows with duplicate titles", t, func() {
		rows := []model.Song{
			{"title": "Hold On", "artist": "Wilson Phillips"},
			{"title": "hold on", "artist": "Alabama Shakes"},
			{"title": "HOLD ON", "artist": "Tom Waits"},
			{"title": "Alive", "artist": "Pearl Jam"},
		}

		Convey("When building the index", func() {
			ix := Build(rows)

			Convey("Then the first occurrence wins", func() {
				song, found := ix.Lookup(Key("hold on"))
				So(found, ShouldBeTrue)
				So(song["artist"], ShouldEqual, "Wilson Phillips")
			})

			Convey("And later claimants are reported in row order", func() {
				So(ix.Duplicates(), ShouldResemble, []string{"hold on", "HOLD ON"})
				So(ix.Len(), ShouldEqual, 2)
			})
		})
	})
}

func TestBuildUntitled(t *testing.T) {
	Convey("Given rows without usable titles", t, func() {
		rows := []model.Song{
			{"title": "Alive", "artist": "Pearl Jam"},
			{"artist": "No Title Attribute"},
			{"title": nil, "artist": "Null Title"},
			{"title": "", "artist": "Empty Title"},
			{"title": "   ", "artist": "Whitespace Title"},
			{"title": 7.0, "artist": "Numeric Title"},
		}

		Convey("When building the index", func() {
			ix := Build(rows)

			Convey("Then unusable rows are skipped and counted", func() {
				So(ix.Len(), ShouldEqual, 1)
				So(ix.Untitled(), ShouldEqual, 5)
				So(ix.Duplicates(), ShouldBeEmpty)
			})

			Convey("And the usable row is still reachable", func() {
				_, found := ix.Lookup(Key("alive"))
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestBuildEmpty(t *testing.T) {
	Convey("Given no rows", t, func() {
		Convey("When building the index", func() {
			ix := Build(nil)

			Convey("Then the index is empty but well-formed", func() {
				So(ix.Len(), ShouldEqual, 0)
				So(ix.Duplicates(), ShouldBeEmpty)
				So(ix.Untitled(), ShouldEqual, 0)

				_, found := ix.Lookup(Key("anything"))
				So(found, ShouldBeFalse)
			})
		})
	})
}

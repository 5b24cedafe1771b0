package codec

import (
	"testing"

	"event-booking-terminal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{
			ID:                   1,
			Title:                "Birthday Party",
			Description:          "Sixth birthday",
			Date:                 "2025-06-01",
			Time:                 "09:00-12:00",
			Location:             "1st Floor Banquet Hall",
			OrganizerID:          1001,
			Attendees:            []int{1002, 1003},
			ExpectedParticipants: 10,
			TotalFee:             445,
			ThemeCost:            345,
			ThemeName:            "Princess",
			VendorName:           "FairyTale Decorators",
			Marketing:            "Free cake for everyone",
			Status:               models.StatusCompleted,
			Ratings: []models.Rating{
				{AttendeeID: 1002, Rating: 4.5, Comment: "great", Complaint: ""},
				{AttendeeID: 1003, Rating: 3, Comment: "ok", Complaint: "too loud"},
			},
			AverageRating: 3.75,
		},
		{
			ID:                   2,
			Title:                "Retro Night",
			Description:          "Eighties music",
			Date:                 "2026-01-15",
			Time:                 "18:00-21:00",
			Location:             "3rd Floor Banquet Hall",
			OrganizerID:          models.DeletedOrganizerID,
			ExpectedParticipants: 100,
			TotalFee:             600,
			ThemeCost:            0,
			ThemeName:            models.NoneOption,
			VendorName:           models.NoneOption,
			Status:               models.StatusUpcoming,
		},
	}
}

func TestPipeEventCodec_RoundTrip(t *testing.T) {
	c := NewPipeEventCodec()
	events := sampleEvents()

	decoded, skipped := c.Decode(c.Encode(events))

	assert.Empty(t, skipped)
	assert.Equal(t, events, decoded)
}

func TestPipeEventCodec_EncodeLayout(t *testing.T) {
	c := NewPipeEventCodec()

	out := string(c.Encode(sampleEvents()[:1]))

	expected := "1|Birthday Party|Sixth birthday|2025-06-01|09:00-12:00|1st Floor Banquet Hall|1001|1002,1003|10|445|345|Princess|FairyTale Decorators|Free cake for everyone|COMPLETED|3.75|1002,4.5,great,;1003,3,ok,too loud\n"
	assert.Equal(t, expected, out)
}

func TestPipeEventCodec_RepeatingAverageSurvives(t *testing.T) {
	c := NewPipeEventCodec()
	ev := sampleEvents()[1]
	ev.AverageRating = 13.0 / 3.0

	decoded, _ := c.Decode(c.Encode([]models.Event{ev}))

	require.Len(t, decoded, 1)
	assert.Equal(t, ev.AverageRating, decoded[0].AverageRating)
}

func TestPipeEventCodec_DecodeSkipsMalformedLines(t *testing.T) {
	c := NewPipeEventCodec()
	data := []byte(
		"1|A|B|2025-01-01|09:00-12:00|1st Floor Banquet Hall|5||10|100|0|None|None||UPCOMING|0|\n" +
			"too|few|fields\n" +
			"\n" +
			"x|A|B|2025-01-01|09:00-12:00|1st Floor Banquet Hall|5||10|100|0|None|None||UPCOMING|0|\n" +
			"3|A|B|2025-01-01|12:00-15:00|1st Floor Banquet Hall|5|1,zz|10|100|0|None|None||UPCOMING|0|\n" +
			"4|A|B|2025-01-01|15:00-18:00|1st Floor Banquet Hall|5||10|100|0|None|None||COMPLETED|0|9,notanumber,c,d\n",
	)

	events, skipped := c.Decode(data)

	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].ID)
	require.Len(t, skipped, 4)
	assert.Equal(t, 2, skipped[0].Line)
	assert.Equal(t, 4, skipped[1].Line)
	assert.Equal(t, 5, skipped[2].Line)
	assert.Equal(t, 6, skipped[3].Line)
}

func TestPipeEventCodec_DecodeWithoutTrailingRatingsField(t *testing.T) {
	c := NewPipeEventCodec()
	data := []byte("7|A|B|2025-01-01|09:00-12:00|1st Floor Banquet Hall|5|8|10|100|0|None|None|ad|ONGOING|0")

	events, skipped := c.Decode(data)

	assert.Empty(t, skipped)
	require.Len(t, events, 1)
	assert.Equal(t, []int{8}, events[0].Attendees)
	assert.Equal(t, models.StatusOngoing, events[0].Status)
	assert.Nil(t, events[0].Ratings)
}

func TestPipeEventCodec_UnknownStatusFallsBackToUpcoming(t *testing.T) {
	c := NewPipeEventCodec()
	data := []byte("7|A|B|2025-01-01|09:00-12:00|1st Floor Banquet Hall|5||10|100|0|None|None||POSTPONED|0|\n")

	events, _ := c.Decode(data)

	require.Len(t, events, 1)
	assert.Equal(t, models.StatusUpcoming, events[0].Status)
}

func TestPipeEventCodec_DelimiterInFreeTextIsLossy(t *testing.T) {
	c := NewPipeEventCodec()
	ev := sampleEvents()[1]
	ev.Title = "Rock | Roll"

	decoded, skipped := c.Decode(c.Encode([]models.Event{ev}))

	assert.Empty(t, decoded)
	require.Len(t, skipped, 1)
	assert.Equal(t, 1, skipped[0].Line)
}

func TestPipeEventCodec_ExtraCommasInComplaintAreDropped(t *testing.T) {
	c := NewPipeEventCodec()
	ev := sampleEvents()[0]
	ev.Ratings = []models.Rating{{AttendeeID: 1002, Rating: 2, Comment: "meh", Complaint: "cold, late"}}

	decoded, _ := c.Decode(c.Encode([]models.Event{ev}))

	require.Len(t, decoded, 1)
	require.Len(t, decoded[0].Ratings, 1)
	assert.Equal(t, "cold", decoded[0].Ratings[0].Complaint)
}

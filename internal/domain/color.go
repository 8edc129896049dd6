package domain

import (
	"hash/fnv"
	"strconv"
)

// displayPalette is the fixed set of colors used for appointment badges.
var displayPalette = []string{
	"#4F46E5", // indigo
	"#0891B2", // cyan
	"#059669", // emerald
	"#D97706", // amber
	"#DC2626", // red
	"#7C3AED", // violet
	"#DB2777", // pink
	"#475569", // slate
}

// DisplayColor returns a stable presentation color for an appointment.
// Hashing the id keeps the color identical across re-renders, unlike the
// random assignment it replaces.
func DisplayColor(appointmentID int64) string {
	h := fnv.New32a()
	h.Write([]byte(strconv.FormatInt(appointmentID, 10)))
	return displayPalette[h.Sum32()%uint32(len(displayPalette))]
}

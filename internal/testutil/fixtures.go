package testutil

import "github.com/railwatch/railwatch-cli/internal/models"

// Sample records for tests. Values match the mock provider table.

// GaribRath is served for train numbers ending in 5
func GaribRath() models.TrainStatus {
	return models.TrainStatus{
		TrainName:       "GARIB RATH",
		CurrentStation:  "Patna Jn",
		Status:          "Departed from Patna. On time.",
		Delay:           "2 minutes",
		NextStation:     "Mughal Sarai",
		ExpectedArrival: "07:00 PM",
	}
}

// BengaluruRajdhani is served for train numbers ending in 9
func BengaluruRajdhani() models.TrainStatus {
	return models.TrainStatus{
		TrainName:       "BENGALURU RAJDHANI",
		CurrentStation:  "Secunderabad Jn",
		Status:          "Departed Secunderabad. 10 mins late.",
		Delay:           "10 minutes",
		NextStation:     "Bengaluru City",
		ExpectedArrival: "06:00 AM",
	}
}

// TejasExpress is served for train numbers ending in 3 (running early)
func TejasExpress() models.TrainStatus {
	return models.TrainStatus{
		TrainName:       "TEJAS EXPRESS",
		CurrentStation:  "Kanpur Central",
		Status:          "Departed from Kanpur. Running 5 mins early.",
		Delay:           "-5 minutes",
		NextStation:     "Lucknow",
		ExpectedArrival: "01:20 PM",
	}
}

// SampleStatusJSON is a cached record as written by the status cache
const SampleStatusJSON = `{"train_name":"GARIB RATH","current_station_name":"Patna Jn","status":"Departed from Patna. On time.","delay":"2 minutes","next_station_name":"Mughal Sarai","expected_arrival_time_at_next_station":"07:00 PM"}`

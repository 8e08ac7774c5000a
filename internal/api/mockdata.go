package api

import "github.com/railwatch/railwatch-cli/internal/models"

// mockTrains is the fixed lookup table served by MockResolver, indexed by the
// last digit of the train number.
var mockTrains = [...]models.TrainStatus{
	{TrainName: "MUMBAI RAJDHANI", CurrentStation: "Borivali", Status: "Departed from Borivali. On time.", Delay: "0 minutes", NextStation: "Mumbai Central", ExpectedArrival: "08:15 AM"},
	{TrainName: "SHATABDI EXPRESS", CurrentStation: "Ghaziabad Jn", Status: "Approaching Ghaziabad. Running 15 mins late.", Delay: "15 minutes", NextStation: "New Delhi", ExpectedArrival: "10:45 AM"},
	{TrainName: "VANDE BHARAT", CurrentStation: "Ambala Cantt Jn", Status: "Arrived at Ambala. On time.", Delay: "0 minutes", NextStation: "New Delhi", ExpectedArrival: "12:30 PM"},
	{TrainName: "TEJAS EXPRESS", CurrentStation: "Kanpur Central", Status: "Departed from Kanpur. Running 5 mins early.", Delay: "-5 minutes", NextStation: "Lucknow", ExpectedArrival: "01:20 PM"},
	{TrainName: "DURONTO EXPRESS", CurrentStation: "Nagpur Jn", Status: "Technical halt at Nagpur.", Delay: "25 minutes", NextStation: "Itarsi Jn", ExpectedArrival: "04:50 PM"},
	{TrainName: "GARIB RATH", CurrentStation: "Patna Jn", Status: "Departed from Patna. On time.", Delay: "2 minutes", NextStation: "Mughal Sarai", ExpectedArrival: "07:00 PM"},
	{TrainName: "CHENNAI EXPRESS", CurrentStation: "Vijayawada Jn", Status: "Approaching Vijayawada. 30 mins late.", Delay: "30 minutes", NextStation: "Chennai Central", ExpectedArrival: "11:00 PM"},
	{TrainName: "HOWRAH MAIL", CurrentStation: "Asansol Jn", Status: "Arrived at Asansol. On time.", Delay: "0 minutes", NextStation: "Howrah Jn", ExpectedArrival: "03:30 AM"},
	{TrainName: "PUNE DURONTO", CurrentStation: "Lonavala", Status: "Departed Lonavala. On time.", Delay: "1 minute", NextStation: "Pune Jn", ExpectedArrival: "09:45 AM"},
	{TrainName: "BENGALURU RAJDHANI", CurrentStation: "Secunderabad Jn", Status: "Departed Secunderabad. 10 mins late.", Delay: "10 minutes", NextStation: "Bengaluru City", ExpectedArrival: "06:00 AM"},
}

// MockTrains returns a copy of the mock lookup table in index order.
func MockTrains() []models.TrainStatus {
	out := make([]models.TrainStatus, len(mockTrains))
	copy(out, mockTrains[:])
	return out
}

package constants

// Phrases maps a simulated year to the milestone shown when it is reached
var Phrases = map[int]string{
	1957: "First Sputnik",
	1961: "Gagarin flew!",
	1969: "Armstrong got on the moon!",
	1971: "First orbital space station Salute-1",
	1981: "Flight of the Shuttle Columbia",
	1998: "ISS start building",
	2011: "Messenger launch to Mercury",
	2020: "Take the plasma gun! Shoot the garbage!",
}

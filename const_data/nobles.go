package const_data

import "go-splendor/entities"

// NobleTilesList 贵族瓷砖, each worth 3 points.
var NobleTilesList = []entities.NobleTile{
	{ID: "N1", Requirement: cost(4, 0, 0, 0, 4), Points: 3},
	{ID: "N2", Requirement: cost(4, 4, 0, 0, 0), Points: 3},
	{ID: "N3", Requirement: cost(0, 0, 4, 0, 4), Points: 3},
	{ID: "N4", Requirement: cost(0, 0, 4, 4, 0), Points: 3},
	{ID: "N5", Requirement: cost(0, 4, 0, 4, 0), Points: 3},
	{ID: "N6", Requirement: cost(3, 3, 0, 0, 3), Points: 3},
	{ID: "N7", Requirement: cost(3, 0, 3, 0, 3), Points: 3},
	{ID: "N8", Requirement: cost(0, 0, 3, 3, 3), Points: 3},
	{ID: "N9", Requirement: cost(0, 3, 3, 3, 0), Points: 3},
	{ID: "N10", Requirement: cost(3, 3, 0, 3, 0), Points: 3},
}

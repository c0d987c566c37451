package plot

// coastlines holds coarse coastline polylines as {longitude, latitude}
// pairs in degrees, hand-simplified to read well at the rendered map size.
// Closed outlines repeat their first vertex; Antarctica is an open run
// across the bottom of the map, and Chukotka is clamped at the antimeridian.
var coastlines = [][][2]float64{
	// North America
	{
		{-168, 65.5}, {-166.5, 68.3}, {-156.5, 71.3}, {-141, 69.6}, {-127, 70.2},
		{-115, 68.5}, {-103, 68.9}, {-95, 67}, {-94.5, 64}, {-91, 57.2},
		{-79.8, 51.5}, {-78.5, 55.3}, {-77.3, 62.5}, {-70, 61}, {-64.5, 60.3},
		{-55.7, 53}, {-52.7, 47.5}, {-60, 45.3}, {-70.2, 43.6}, {-74, 40.5},
		{-75.5, 35.2}, {-81.5, 30.7}, {-80.1, 25.8}, {-81.8, 26}, {-84, 30.1},
		{-89.1, 29.2}, {-94.8, 29.3}, {-97.2, 25.9}, {-97.7, 22.3}, {-94.5, 18.1},
		{-89.6, 21.3}, {-86.8, 21.1}, {-88.3, 18.5}, {-83.2, 15}, {-83.6, 10.9},
		{-81, 8.9}, {-77.2, 8.7}, {-78.2, 8.4}, {-80, 7.5}, {-85.7, 11.1},
		{-91, 14.5}, {-95.2, 16.2}, {-105.7, 20.4}, {-108.1, 25.5}, {-110.6, 27.9},
		{-113.1, 31.2}, {-114.6, 29.8}, {-112.3, 26}, {-109.5, 23.1}, {-112.1, 24.8},
		{-115.8, 29.8}, {-117.1, 32.5}, {-122.4, 37.8}, {-124.2, 42}, {-124.7, 48.4},
		{-128, 51}, {-132, 54}, {-136.5, 58}, {-139.5, 59.8}, {-146, 61},
		{-151.7, 59.2}, {-158.5, 56}, {-164.5, 54.5}, {-161, 58.7}, {-166, 61},
		{-168, 65.5},
	},
	// South America
	{
		{-77.2, 8.6}, {-71.6, 12.5}, {-64, 10.6}, {-61.9, 10.1}, {-55, 5.9},
		{-49.9, 0.1}, {-44.3, -2.8}, {-35, -5.5}, {-34.8, -7.9}, {-39, -13},
		{-40.9, -21.9}, {-43.2, -23}, {-48.5, -25.5}, {-51.5, -30.5}, {-56, -34.7},
		{-62.1, -38.9}, {-65, -45}, {-67.6, -49.3}, {-68.5, -52.3}, {-65.1, -54.9},
		{-67.3, -55.9}, {-73.2, -53.2}, {-75.1, -50}, {-73.9, -43.5}, {-73.5, -41.5},
		{-71.5, -32.9}, {-70.3, -18.3}, {-75.9, -14.6}, {-81.3, -6}, {-81, -2.2},
		{-78.9, 1.4}, {-77.4, 4}, {-77.2, 8.6},
	},
	// Africa
	{
		{-5.9, 35.8}, {-9.8, 31.5}, {-14.5, 26.4}, {-17, 21}, {-17.4, 14.7},
		{-15, 11}, {-13.3, 8.5}, {-7.5, 4.4}, {-4, 5.3}, {3.4, 6.4},
		{8.5, 4.5}, {9.3, -1.5}, {12.3, -6.1}, {13.2, -8.8}, {11.8, -15.8},
		{14.5, -22.9}, {17.1, -28.5}, {18.4, -34.2}, {20, -34.8}, {27.9, -33},
		{32.6, -28.5}, {34.9, -19.8}, {40.5, -15}, {40.1, -10.3}, {39.3, -6.8},
		{41.9, -1.7}, {45, 2}, {51.4, 10.4}, {48.1, 11.3}, {43.5, 11.5},
		{39.5, 15.5}, {37.2, 19.6}, {33.9, 27}, {32.5, 29.9}, {31.2, 31.3},
		{25.1, 31.6}, {19, 30.3}, {15.2, 32.4}, {10.2, 36.9}, {5.1, 36.8},
		{-5.9, 35.8},
	},
	// Eurasia, from Iberia around the Arctic and Pacific rims to the
	// Mediterranean
	{
		{-9.1, 38.7}, {-8.9, 43.3}, {-1.8, 43.4}, {-4.8, 48.4}, {1.6, 50.9},
		{4.8, 52.9}, {8.1, 55.5}, {10.6, 57.7}, {12, 54.2}, {18.5, 54.4},
		{24.1, 57}, {24.8, 59.4}, {29.8, 59.9}, {22.5, 60.2}, {25.3, 64.8},
		{24, 65.7}, {21.5, 64.4}, {17.1, 60.7}, {18.1, 59.3}, {14.8, 56.1},
		{12.7, 56}, {10.7, 59.9}, {5.3, 60.4}, {8, 63.5}, {14, 67.3},
		{18.9, 69.7}, {25.8, 71.1}, {31, 70.4}, {37.3, 66.5}, {40.5, 64.5},
		{44.2, 66.8}, {54, 68.5}, {66.5, 71.5}, {73, 67}, {78.5, 72},
		{95, 76}, {104.3, 77.7}, {113, 73.5}, {126.5, 72.3}, {139.5, 71.5},
		{152, 70.5}, {161, 69.5}, {171, 67}, {180, 65.3}, {177.5, 64.7},
		{173, 61.5}, {166, 60.5}, {162.8, 56.3}, {156.7, 51}, {155.6, 57},
		{152, 59.5}, {142, 59.5}, {137.8, 56.5}, {141.5, 53}, {140.2, 48.4},
		{131.9, 43.1}, {129.4, 40}, {129, 35.1}, {126.5, 34.8}, {125.4, 38},
		{121.6, 39.5}, {117.7, 38.9}, {122.5, 37.4}, {119.2, 34.8}, {121.8, 31.2},
		{120, 26.5}, {113.6, 22.2}, {108.6, 21.5}, {105.7, 19.1}, {109.3, 13.5},
		{106.5, 9.8}, {104.8, 8.6}, {100.3, 9.3}, {100.6, 13.5}, {99.9, 11.8},
		{102.2, 6.2}, {103.8, 1.35}, {101.3, 2.9}, {98.7, 7.8}, {97.7, 16.8},
		{94.7, 17.5}, {91.8, 22.3}, {86.9, 20.5}, {80.3, 15.9}, {80.3, 13.1},
		{77.5, 8.1}, {72.8, 19}, {68.8, 23}, {66.9, 24.8}, {61.6, 25.2},
		{56.4, 27.1}, {51.5, 29.4}, {48.5, 29.9}, {50.2, 26.5}, {51.3, 25.3},
		{54.5, 24.4}, {56.4, 25.6}, {59.8, 22.5}, {57.8, 18.9}, {52.2, 15.6},
		{45, 12.8}, {43.3, 12.6}, {42.7, 16.5}, {39.2, 21.5}, {34.9, 29.5},
		{34.3, 31.3}, {35, 33}, {36, 36.8}, {30.6, 36.8}, {27.3, 36.7},
		{26.3, 39.5}, {23.7, 37.9}, {22.4, 36.4}, {19.4, 41.9}, {15.3, 43.7},
		{12.3, 45.4}, {18.5, 40.1}, {15.7, 38}, {14.3, 40.8}, {12.2, 41.8},
		{8.9, 44.4}, {5.4, 43.3}, {2.2, 41.4}, {-0.3, 39.5}, {-2.1, 36.7},
		{-5.4, 36.1}, {-6.3, 36.5}, {-9.1, 38.7},
	},
	// Black Sea
	{
		{29, 41.2}, {33.3, 42}, {39.8, 43.4}, {41.5, 41.5}, {41.4, 42.9},
		{39.8, 44.6}, {36.5, 45.3}, {33.5, 44.5}, {30.7, 46.2}, {28.1, 43.4},
		{29, 41.2},
	},
	// Caspian Sea
	{
		{48.6, 45.8}, {51.2, 46.9}, {53.2, 45.9}, {52.6, 42.8}, {54, 41.8},
		{53.9, 38.9}, {51.2, 36.6}, {49.1, 37.6}, {48.9, 40.1}, {47.5, 43.8},
		{48.6, 45.8},
	},
	// Great Britain
	{
		{-5.7, 50.1}, {1.3, 51.1}, {1.7, 52.7}, {-1.8, 55.6}, {-2.5, 57.7},
		{-5, 58.6}, {-6.2, 56.7}, {-4.8, 54.9}, {-4.7, 52.8}, {-5.3, 51.7},
		{-5.7, 50.1},
	},
	// Ireland
	{
		{-6.2, 52.3}, {-6, 53.5}, {-8.2, 55.2}, {-10, 54.3}, {-9.9, 51.6},
		{-6.2, 52.3},
	},
	// Iceland
	{
		{-22.7, 63.9}, {-24.5, 64.8}, {-23.1, 66.3}, {-15.2, 66.5}, {-13.6, 65.3},
		{-18, 63.4}, {-22.7, 63.9},
	},
	// Greenland
	{
		{-45, 59.8}, {-53.5, 64.2}, {-54.8, 69.3}, {-58, 75.5}, {-68, 76.2},
		{-61, 81.5}, {-34, 83.5}, {-22, 80}, {-20.5, 75}, {-25, 70.5},
		{-33, 67.5}, {-40, 63}, {-45, 59.8},
	},
	// Cuba
	{
		{-84.9, 21.9}, {-80, 23.1}, {-74.1, 20.2}, {-77.7, 19.9}, {-84.9, 21.9},
	},
	// Japan
	{
		{130.7, 31}, {133, 33.5}, {137, 34.7}, {139.8, 35.6}, {141, 38.3},
		{141.5, 41.5}, {143.3, 42}, {145.8, 43.4}, {142, 45.4}, {140.4, 43.3},
		{139.9, 40}, {136.8, 37}, {132, 35}, {129.8, 32.8}, {130.7, 31},
	},
	// Sumatra
	{
		{95.3, 5.6}, {98.7, 3.6}, {103, 0.5}, {104.6, -2.4}, {105.8, -5.9},
		{102.3, -4.5}, {100.3, -0.9}, {97.5, 2.5}, {95.3, 5.6},
	},
	// Borneo
	{
		{109.7, 1.9}, {113.1, 3.2}, {115.2, 5}, {117.2, 7}, {118.1, 5.8},
		{117.6, 3.6}, {116.5, -1.8}, {114.5, -3.5}, {110.2, -2.9}, {109.3, -0.9},
		{109.7, 1.9},
	},
	// Java
	{
		{105.2, -6.8}, {106.8, -6.1}, {110.4, -6.9}, {112.7, -7.2}, {114.4, -8.4},
		{110.6, -8.2}, {107.3, -7.7}, {105.2, -6.8},
	},
	// New Guinea
	{
		{131.3, -0.9}, {136.1, -1.7}, {141, -2.6}, {145.8, -4.9}, {147.1, -6.7},
		{150.7, -10.3}, {146.9, -8.9}, {143.2, -8.2}, {138.9, -8.2}, {138, -6.3},
		{132.7, -3.5}, {131.3, -0.9},
	},
	// Australia
	{
		{142.5, -10.7}, {145.8, -16.9}, {149.2, -21.1}, {153.1, -27.5}, {151.2, -33.9},
		{149.9, -37.5}, {146.4, -38.7}, {140.4, -38}, {137.8, -35.1}, {135.6, -34.9},
		{131, -31.5}, {125.9, -32.3}, {123.5, -33.9}, {117.9, -35.1}, {115.7, -32},
		{113.6, -26.6}, {113.9, -21.8}, {119.5, -20}, {122.2, -18.1}, {126.9, -13.7},
		{130.8, -12.4}, {132.6, -12.1}, {135.4, -12.3}, {136.8, -15.9}, {139.2, -17.7},
		{140.8, -17.5}, {141.4, -14.9}, {142.5, -10.7},
	},
	// New Zealand, North Island
	{
		{173, -34.5}, {175.5, -36.3}, {178, -37.7}, {176.9, -39.5}, {174.8, -41.3},
		{173.2, -39.2}, {173, -34.5},
	},
	// New Zealand, South Island
	{
		{174.3, -41}, {172.7, -43.6}, {170.7, -45.9}, {166.6, -45.9}, {168.4, -44.1},
		{171.5, -41.8}, {174.3, -41},
	},
	// Madagascar
	{
		{49.3, -12.1}, {50.2, -15.3}, {49.8, -16.9}, {47.1, -24.9}, {45.2, -25.6},
		{43.3, -22.3}, {44.4, -19.9}, {44, -16.2}, {46.3, -13.8}, {49.3, -12.1},
	},
	// Antarctica
	{
		{-180, -72.5}, {-155, -75.5}, {-135, -74.5}, {-120, -73}, {-100, -72.5},
		{-75, -68.5}, {-62, -64.5}, {-60, -74}, {-40, -77.5}, {-20, -73},
		{0, -69.5}, {20, -70}, {45, -66.5}, {70, -68}, {90, -66.3},
		{110, -66}, {135, -66}, {145, -67}, {170, -71.5}, {180, -77.5},
	},
}

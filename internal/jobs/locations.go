package jobs

// WesternSydneyLocations is the suburb list offered by the posting form.
// Job locations are stored as plain text, so this list does not constrain
// what can appear on an existing job.
var WesternSydneyLocations = []string{
	"Parramatta",
	"Blacktown",
	"Liverpool",
	"Fairfield",
	"Penrith",
	"Campbelltown",
	"Camden",
	"Bringelly",
	"Oran Park",
	"Mount Druitt",
	"St Marys",
	"Leppington",
	"Luddenham",
	"Kellyville",
	"Marsden Park",
	"Schofields",
	"Rouse Hill",
	"Castle Hill",
	"Baulkham Hills",
	"Merrylands",
	"Auburn",
	"Bankstown",
	"Cabramatta",
	"Wetherill Park",
	"Smithfield",
	"Prairiewood",
	"Bossley Park",
	"Horsley Park",
	"Cecil Park",
	"Kemps Creek",
	"Badgerys Creek",
	"Rossmore",
	"Catherine Field",
	"Harrington Park",
	"Narellan",
	"Smeaton Grange",
	"Gregory Hills",
	"Spring Farm",
	"Currans Hill",
	"Mount Annan",
	"Macarthur",
	"Minto",
	"Ingleburn",
	"Raby",
	"Bradbury",
	"Airds",
	"Ambarvale",
	"Claymore",
	"Eagle Vale",
	"Eschol Park",
	"Kearns",
	"Leumeah",
	"Macquarie Fields",
	"Minto Heights",
	"Ruse",
	"St Andrews",
	"Varroville",
	"Woodbine",
	"Glenfield",
	"Casula",
	"Prestons",
	"Miller",
	"Cartwright",
	"Sadleir",
	"Heckenberg",
	"Busby",
	"Green Valley",
	"Hinchinbrook",
	"Hoxton Park",
	"Len Waters Estate",
	"West Hoxton",
	"Carnes Hill",
	"Edmondson Park",
	"Denham Court",
	"Austral",
	"Lurnea",
	"Warwick Farm",
	"Chipping Norton",
	"Moorebank",
	"Hammondville",
	"Holsworthy",
	"Wattle Grove",
}

package models

// Student is the gamified record of one portal user, keyed by username.
type Student struct {
	Name    string  `json:"name"`
	Assist  int     `json:"assist"`
	Grades  int     `json:"grades"`
	Mean    float64 `json:"mean"`
	Exp     uint64  `json:"exp"`
	Level   uint64  `json:"level"`
	Penalty uint32  `json:"penalty"`
	Bonus   uint32  `json:"bonus"`
	Coins   uint64  `json:"coins"`
}

// Course is a tracked portal course.
type Course struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	GradeCount int    `json:"grade_count"`
}

// DefaultCourses is the tracked course list, in scoring order.
var DefaultCourses = []Course{
	{Code: "CSI0168", Name: "Electivo de Especialidad", GradeCount: 2},
	{Code: "CSI0169", Name: "Habilidades", GradeCount: 5},
	{Code: "CSI0165", Name: "Álgebra Lineal", GradeCount: 3},
	{Code: "CSI0167", Name: "Cálculo Integral", GradeCount: 2},
}

// Credentials are used for one portal login and never stored.
type Credentials struct {
	Username string
	Password string
}

// RawCoursePage holds the grades and attendance page bodies of one course.
type RawCoursePage struct {
	Code           string
	GradesText     string
	AttendanceText string
}

// CourseData is what the extractor pulled out of a RawCoursePage.
type CourseData struct {
	Code           string
	GradeStrings   []string
	AttendanceText string
}

type CourseScore struct {
	Code       string  `json:"code"`
	Mean       float64 `json:"mean"`
	Attendance float64 `json:"attendance"`
}

// ScrapeResult is the stored record, flattened, plus whether it was created.
type ScrapeResult struct {
	Student
	IsNewUser bool          `json:"is_new_user"`
	Courses   []CourseScore `json:"courses,omitempty"`
}

type CoinFlipResult struct {
	Result     string `json:"result"`
	Won        bool   `json:"won"`
	CoinsWon   uint64 `json:"coins_won"`
	CoinsLost  uint64 `json:"coins_lost"`
	NewBalance uint64 `json:"new_balance"`
}

type SlotsResult struct {
	Won           bool     `json:"won"`
	Symbols       []string `json:"symbols"`
	NewBalance    uint64   `json:"new_balance"`
	Payout        uint64   `json:"payout"`
	AmountWagered uint64   `json:"amount_wagered"`
	WinType       string   `json:"win_type,omitempty"`
}

type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       uint64 `json:"price"`
	MaxQuantity int    `json:"max_quantity"`
}

type PurchaseResult struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	CoinsSpent   uint64  `json:"coins_spent"`
	NewBalance   uint64  `json:"new_balance"`
	ItemReceived string  `json:"item_received"`
	Quantity     int     `json:"quantity"`
	NewMean      float64 `json:"new_mean"`
	NewExp       uint64  `json:"new_exp"`
	NewLevel     uint64  `json:"new_level"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Student
}

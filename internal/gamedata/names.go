package gamedata

// FirstNames and LastNames are the pools prospect identities are drawn
// from. Combinations are not deduplicated; a 60x80 pool keeps repeats rare
// within an 800-player class.
var FirstNames = []string{
	"Aaron", "Alex", "Andre", "Andy", "Angel", "Anthony", "Austin", "Ben",
	"Blake", "Brandon", "Caleb", "Carlos", "Chase", "Chris", "Cole", "Connor",
	"Dakota", "Daniel", "Dante", "Derek", "Diego", "Dylan", "Eli", "Eric",
	"Ethan", "Felix", "Gabriel", "Garrett", "Grant", "Hector", "Hunter", "Ian",
	"Isaac", "Jackson", "Jake", "Jamal", "James", "Javier", "Jesse", "Jordan",
	"Jose", "Josh", "Juan", "Kyle", "Liam", "Logan", "Lucas", "Luis",
	"Marcus", "Mason", "Mateo", "Matt", "Miguel", "Nate", "Noah", "Omar",
	"Owen", "Pedro", "Quinn", "Rafael", "Ramon", "Ricky", "Ryan", "Santiago",
	"Sean", "Terrell", "Trevor", "Tyler", "Victor", "Wyatt", "Xavier", "Zack",
}

var LastNames = []string{
	"Abbott", "Aguilar", "Alvarez", "Anderson", "Bailey", "Barnes", "Bell",
	"Bennett", "Brooks", "Bryant", "Burke", "Byrd", "Campbell", "Carter",
	"Castillo", "Chen", "Clark", "Coleman", "Collins", "Cruz", "Curtis",
	"Daniels", "Delgado", "Diaz", "Dixon", "Duncan", "Ellis", "Espinoza",
	"Figueroa", "Fletcher", "Flores", "Foster", "Franklin", "Garcia", "Gibson",
	"Gomez", "Graham", "Grant", "Greene", "Gutierrez", "Harper", "Hayes",
	"Henderson", "Hernandez", "Holloway", "Hughes", "Jenkins", "Jimenez",
	"Kim", "Lawson", "Lee", "Lopez", "Maldonado", "Marshall", "Martinez",
	"McCarthy", "Mendoza", "Mitchell", "Morales", "Murphy", "Nguyen", "Ortiz",
	"Parker", "Patterson", "Perez", "Porter", "Ramirez", "Reyes", "Richardson",
	"Rivera", "Robinson", "Rodriguez", "Rojas", "Romero", "Salazar", "Sanchez",
	"Santos", "Simmons", "Sullivan", "Torres", "Vargas", "Vasquez", "Walsh",
	"Warren", "Washington", "Watkins", "Webb", "Wells", "West", "Wheeler",
}

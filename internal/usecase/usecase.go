package usecase

// The journal is single-user for now; authentication is out of scope,
// so every record is attributed to the same owner.
const defaultUserID = "1"

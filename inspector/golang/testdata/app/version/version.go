package version

//assembly:AssemblyVersion 1.2.3

// Value is the application version
const Value = "1.2.3"

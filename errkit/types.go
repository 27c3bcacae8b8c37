package errkit

// Type identifies an error's position in the fixed error taxonomy. Unlike
// Go's usual practice of letting every package mint its own error values,
// the taxonomy here is closed: every Type a program can throw is declared
// in this file, each with a numeric code, a name and a parent it extends.
// Callers that want to test "is this a file-not-found-shaped problem"
// walk the parent chain with IsA rather than comparing sentinel values.
type Type struct {
	Code   int
	Name   string
	Fatal  bool
	Parent *Type
}

// String returns the type's name, matching how it prints in a thrown
// error's message.
func (t *Type) String() string { return t.Name }

// IsA reports whether t is other, or extends other through zero or more
// parent links. The root type (RuntimeError) extends itself, which stops
// the walk.
func (t *Type) IsA(other *Type) bool {
	for cur := t; ; cur = cur.Parent {
		if cur == other {
			return true
		}
		if cur.Parent == cur {
			return false
		}
	}
}

// Built-in error types. Code, fatal flag and parent are grounded verbatim
// on the ERROR_DEFINE table in error.auto.c; RuntimeError is its own
// parent, making it the root of the tree.
var (
	RuntimeError = &Type{Code: 122, Name: "RuntimeError", Fatal: false}

	AssertError                = &Type{Code: 25, Name: "AssertError", Fatal: true, Parent: RuntimeError}
	ChecksumError               = &Type{Code: 26, Name: "ChecksumError", Parent: RuntimeError}
	ConfigError                 = &Type{Code: 27, Name: "ConfigError", Parent: RuntimeError}
	FileInvalidError            = &Type{Code: 28, Name: "FileInvalidError", Parent: RuntimeError}
	FormatError                 = &Type{Code: 29, Name: "FormatError", Parent: RuntimeError}
	CommandRequiredError        = &Type{Code: 30, Name: "CommandRequiredError", Parent: RuntimeError}
	OptionInvalidError          = &Type{Code: 31, Name: "OptionInvalidError", Parent: RuntimeError}
	OptionInvalidValueError     = &Type{Code: 32, Name: "OptionInvalidValueError", Parent: RuntimeError}
	OptionInvalidRangeError     = &Type{Code: 33, Name: "OptionInvalidRangeError", Parent: RuntimeError}
	OptionInvalidPairError      = &Type{Code: 34, Name: "OptionInvalidPairError", Parent: RuntimeError}
	OptionDuplicateKeyError     = &Type{Code: 35, Name: "OptionDuplicateKeyError", Parent: RuntimeError}
	OptionNegateError           = &Type{Code: 36, Name: "OptionNegateError", Parent: RuntimeError}
	OptionRequiredError         = &Type{Code: 37, Name: "OptionRequiredError", Parent: RuntimeError}
	PgRunningError              = &Type{Code: 38, Name: "PgRunningError", Parent: RuntimeError}
	ProtocolError               = &Type{Code: 39, Name: "ProtocolError", Parent: RuntimeError}
	PathNotEmptyError           = &Type{Code: 40, Name: "PathNotEmptyError", Parent: RuntimeError}
	FileOpenError               = &Type{Code: 41, Name: "FileOpenError", Parent: RuntimeError}
	FileReadError               = &Type{Code: 42, Name: "FileReadError", Parent: RuntimeError}
	ParamRequiredError          = &Type{Code: 43, Name: "ParamRequiredError", Parent: RuntimeError}
	ArchiveMismatchError        = &Type{Code: 44, Name: "ArchiveMismatchError", Parent: RuntimeError}
	ArchiveDuplicateError       = &Type{Code: 45, Name: "ArchiveDuplicateError", Parent: RuntimeError}
	VersionNotSupportedError    = &Type{Code: 46, Name: "VersionNotSupportedError", Parent: RuntimeError}
	PathCreateError             = &Type{Code: 47, Name: "PathCreateError", Parent: RuntimeError}
	CommandInvalidError         = &Type{Code: 48, Name: "CommandInvalidError", Parent: RuntimeError}
	HostConnectError            = &Type{Code: 49, Name: "HostConnectError", Parent: RuntimeError}
	LockAcquireError            = &Type{Code: 50, Name: "LockAcquireError", Parent: RuntimeError}
	BackupMismatchError         = &Type{Code: 51, Name: "BackupMismatchError", Parent: RuntimeError}
	FileSyncError               = &Type{Code: 52, Name: "FileSyncError", Parent: RuntimeError}
	PathOpenError               = &Type{Code: 53, Name: "PathOpenError", Parent: RuntimeError}
	PathSyncError               = &Type{Code: 54, Name: "PathSyncError", Parent: RuntimeError}
	FileMissingError            = &Type{Code: 55, Name: "FileMissingError", Parent: RuntimeError}
	DbConnectError              = &Type{Code: 56, Name: "DbConnectError", Parent: RuntimeError}
	DbQueryError                = &Type{Code: 57, Name: "DbQueryError", Parent: RuntimeError}
	DbMismatchError             = &Type{Code: 58, Name: "DbMismatchError", Parent: RuntimeError}
	DbTimeoutError              = &Type{Code: 59, Name: "DbTimeoutError", Parent: RuntimeError}
	FileRemoveError             = &Type{Code: 60, Name: "FileRemoveError", Parent: RuntimeError}
	PathRemoveError             = &Type{Code: 61, Name: "PathRemoveError", Parent: RuntimeError}
	StopError                   = &Type{Code: 62, Name: "StopError", Parent: RuntimeError}
	TermError                   = &Type{Code: 63, Name: "TermError", Parent: RuntimeError}
	FileWriteError              = &Type{Code: 64, Name: "FileWriteError", Parent: RuntimeError}
	ProtocolTimeoutError        = &Type{Code: 66, Name: "ProtocolTimeoutError", Parent: RuntimeError}
	FeatureNotSupportedError    = &Type{Code: 67, Name: "FeatureNotSupportedError", Parent: RuntimeError}
	ArchiveCommandInvalidError  = &Type{Code: 68, Name: "ArchiveCommandInvalidError", Parent: RuntimeError}
	LinkExpectedError           = &Type{Code: 69, Name: "LinkExpectedError", Parent: RuntimeError}
	LinkDestinationError        = &Type{Code: 70, Name: "LinkDestinationError", Parent: RuntimeError}
	HostInvalidError            = &Type{Code: 72, Name: "HostInvalidError", Parent: RuntimeError}
	PathMissingError            = &Type{Code: 73, Name: "PathMissingError", Parent: RuntimeError}
	FileMoveError               = &Type{Code: 74, Name: "FileMoveError", Parent: RuntimeError}
	BackupSetInvalidError       = &Type{Code: 75, Name: "BackupSetInvalidError", Parent: RuntimeError}
	TablespaceMapError          = &Type{Code: 76, Name: "TablespaceMapError", Parent: RuntimeError}
	PathTypeError               = &Type{Code: 77, Name: "PathTypeError", Parent: RuntimeError}
	LinkMapError                = &Type{Code: 78, Name: "LinkMapError", Parent: RuntimeError}
	FileCloseError              = &Type{Code: 79, Name: "FileCloseError", Parent: RuntimeError}
	DbMissingError               = &Type{Code: 80, Name: "DbMissingError", Parent: RuntimeError}
	DbInvalidError               = &Type{Code: 81, Name: "DbInvalidError", Parent: RuntimeError}
	ArchiveTimeoutError          = &Type{Code: 82, Name: "ArchiveTimeoutError", Parent: RuntimeError}
	FileModeError                = &Type{Code: 83, Name: "FileModeError", Parent: RuntimeError}
	OptionMultipleValueError     = &Type{Code: 84, Name: "OptionMultipleValueError", Parent: RuntimeError}
	ProtocolOutputRequiredError  = &Type{Code: 85, Name: "ProtocolOutputRequiredError", Parent: RuntimeError}
	LinkOpenError                = &Type{Code: 86, Name: "LinkOpenError", Parent: RuntimeError}
	ArchiveDisabledError         = &Type{Code: 87, Name: "ArchiveDisabledError", Parent: RuntimeError}
	FileOwnerError               = &Type{Code: 88, Name: "FileOwnerError", Parent: RuntimeError}
	UserMissingError             = &Type{Code: 89, Name: "UserMissingError", Parent: RuntimeError}
	OptionCommandError           = &Type{Code: 90, Name: "OptionCommandError", Parent: RuntimeError}
	GroupMissingError            = &Type{Code: 91, Name: "GroupMissingError", Parent: RuntimeError}
	PathExistsError              = &Type{Code: 92, Name: "PathExistsError", Parent: RuntimeError}
	FileExistsError              = &Type{Code: 93, Name: "FileExistsError", Parent: RuntimeError}
	MemoryError                  = &Type{Code: 94, Name: "MemoryError", Fatal: true, Parent: RuntimeError}
	CryptoError                  = &Type{Code: 95, Name: "CryptoError", Parent: RuntimeError}
	ParamInvalidError            = &Type{Code: 96, Name: "ParamInvalidError", Parent: RuntimeError}
	PathCloseError               = &Type{Code: 97, Name: "PathCloseError", Parent: RuntimeError}
	FileInfoError                = &Type{Code: 98, Name: "FileInfoError", Parent: RuntimeError}
	JsonFormatError              = &Type{Code: 99, Name: "JsonFormatError", Parent: RuntimeError}
	KernelError                  = &Type{Code: 100, Name: "KernelError", Parent: RuntimeError}
	ServiceError                 = &Type{Code: 101, Name: "ServiceError", Parent: RuntimeError}
	ExecuteError                 = &Type{Code: 102, Name: "ExecuteError", Parent: RuntimeError}
	RepoInvalidError             = &Type{Code: 103, Name: "RepoInvalidError", Parent: RuntimeError}
	CommandError                 = &Type{Code: 104, Name: "CommandError", Parent: RuntimeError}
	AccessError                  = &Type{Code: 105, Name: "AccessError", Parent: RuntimeError}
	ClockError                   = &Type{Code: 106, Name: "ClockError", Parent: RuntimeError}

	InvalidError   = &Type{Code: 123, Name: "InvalidError", Parent: RuntimeError}
	UnhandledError = &Type{Code: 124, Name: "UnhandledError", Parent: RuntimeError}
	UnknownError   = &Type{Code: 125, Name: "UnknownError", Parent: RuntimeError}
)

func init() {
	RuntimeError.Parent = RuntimeError
}

// all is the closed manifest of every built-in type, used for code/name
// uniqueness checks and lookup by code.
var all = []*Type{
	RuntimeError,
	AssertError, ChecksumError, ConfigError, FileInvalidError, FormatError,
	CommandRequiredError, OptionInvalidError, OptionInvalidValueError,
	OptionInvalidRangeError, OptionInvalidPairError, OptionDuplicateKeyError,
	OptionNegateError, OptionRequiredError, PgRunningError, ProtocolError,
	PathNotEmptyError, FileOpenError, FileReadError, ParamRequiredError,
	ArchiveMismatchError, ArchiveDuplicateError, VersionNotSupportedError,
	PathCreateError, CommandInvalidError, HostConnectError, LockAcquireError,
	BackupMismatchError, FileSyncError, PathOpenError, PathSyncError,
	FileMissingError, DbConnectError, DbQueryError, DbMismatchError,
	DbTimeoutError, FileRemoveError, PathRemoveError, StopError, TermError,
	FileWriteError, ProtocolTimeoutError, FeatureNotSupportedError,
	ArchiveCommandInvalidError, LinkExpectedError, LinkDestinationError,
	HostInvalidError, PathMissingError, FileMoveError, BackupSetInvalidError,
	TablespaceMapError, PathTypeError, LinkMapError, FileCloseError,
	DbMissingError, DbInvalidError, ArchiveTimeoutError, FileModeError,
	OptionMultipleValueError, ProtocolOutputRequiredError, LinkOpenError,
	ArchiveDisabledError, FileOwnerError, UserMissingError, OptionCommandError,
	GroupMissingError, PathExistsError, FileExistsError, MemoryError,
	CryptoError, ParamInvalidError, PathCloseError, FileInfoError,
	JsonFormatError, KernelError, ServiceError, ExecuteError, RepoInvalidError,
	CommandError, AccessError, ClockError, InvalidError, UnhandledError,
	UnknownError,
}

// byCode indexes all by Type.Code for ByCode lookups.
var byCode = func() map[int]*Type {
	m := make(map[int]*Type, len(all))
	for _, t := range all {
		m[t.Code] = t
	}
	return m
}()

// ByCode looks up a built-in type by its numeric code.
func ByCode(code int) (*Type, bool) {
	t, ok := byCode[code]
	return t, ok
}

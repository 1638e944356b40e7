// Package inventory lists the software installed on the host and describes
// the host itself.
//
// Installed software is read from the three Uninstall registry roots through
// a [Source]. Two sources exist: [RegQuerySource] scrapes the text output of
// the `reg query` command, and [RegistrySource] reads the registry natively
// on Windows builds. Both yield the same [models.SoftwareInfo] records, so
// callers never see how the registry was read.
//
// [HostCollector] and [FirmwareCollector] add an operating system summary
// and the DMI tables of the machine.
package inventory

// Package allocator implements contiguous memory placement for simulated
// processes.  A Service keeps an ordered list of blocks that always partitions
// the full address space; allocation splits a free block under the configured
// strategy (First-Fit, Best-Fit, Worst-Fit) and deallocation coalesces every
// run of adjacent free blocks back together.  The package never prints or
// logs; all outcomes are reported through return values.
package allocator
